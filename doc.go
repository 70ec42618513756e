// Package antennae discovers templates embedded in HTML script elements,
// registers them by name, and renders them through a logic-less template
// engine.
//
// A page declares templates with a template type marker and a name:
//
//	<script type="text/html" id="greeting">Hello, {{name}}!</script>
//	<script type="x-tmpl-mustache" data-name="footer"><![CDATA[
//		<footer>{{> greeting}}</footer>
//	]]></script>
//
// Loading the page registers both templates; rendering one makes every other
// registered template available as a partial:
//
//	tpl := antennae.New()
//	if err := tpl.LoadFile(ctx, "page.html"); err != nil {
//		return err
//	}
//	out, err := tpl.Render("footer", map[string]any{"name": "Jan"})
//
// Templates can also be registered directly with Register. Each Templates value
// owns its store; there is no package level registry.
package antennae
