/*
Package thedom builds HTML pages from trees of server-side elements.

Elements are Go values that render themselves to markup, bind request
values and collect client side scripts. They come from factories (one per
element package) and can be described as data in templates stored in a Loam
directory, so pages can be assembled without writing Go.

# Usage

	eng, err := thedom.New("./templates")
	if err != nil {
		log.Fatal(err)
	}

	page, err := eng.Load(ctx, "signup")
	if err != nil {
		log.Fatal(err)
	}

	page.Bind(map[string]any{"email": "ada@example.com"})
	fmt.Println(page.HTML(true))

# Packages

  - pkg/node: the element model (tree, attributes, properties, binding, scripts).
  - pkg/dom: the HTML tag catalog and a markup parser.
  - pkg/inputs, pkg/fields, pkg/display, pkg/layout, pkg/dataviews: widgets.
  - pkg/document, pkg/resources: full documents and their static resources.
  - pkg/factory: product registries and templates.
*/
package thedom
