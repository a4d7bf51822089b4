package render

const defaultLayout = `{% if theme.css_vars_style %}<style>{{ theme.css_vars_style|safe }}</style>
{% endif %}{% if stylesheet %}<link rel="stylesheet" href="{{ stylesheet }}">
{% endif %}<form id="{{ id }}" action="{{ action }}" method="{{ method }}"{% if theme.name %} data-theme="{{ theme.name }}"{% endif %}{% if theme.variant %} data-theme-variant="{{ theme.variant }}"{% endif %}>
{% for field in hidden %}<input type="hidden" name="{{ field.Name }}" value="{{ field.Value }}">
{% endfor %}{{ body|safe }}
</form>
`

// layoutPartial is the theme partial key that overrides the layout.
const layoutPartial = "forms.layout"

// stylesheetAsset is the asset key resolved through the theme's AssetURL.
const stylesheetAsset = "forms.stylesheet"
