// Package schema loads declarative form schemas from JSON or YAML documents:
//
//	forms:
//	  signup:
//	    namespace: [signup]
//	    fields:
//	      - name: full_name
//	      - name: subscribe
//	        kind: boolean
//	      - name: nickname
//	        kind: string
//	        options: { label: Nick }
//	      - name: address
//	        form: address
//	  address:
//	    fields:
//	      - name: street
//	      - name: zip
//
// A field's kind accepts the same shapes as forms.Registry.Resolve. "form"
// nests another schema from the same store.
package schema
