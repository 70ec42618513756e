// Package loader discovers templates embedded in script elements of a host
// document and registers them by name.
//
// A script element qualifies when its type attribute is one of the accepted
// template markers ("text/html" and "x-tmpl-mustache" by default) and it does
// not carry a truthy data-ignore attribute. The template name comes from
// data-name, falling back to id. Content is stripped of surrounding
// whitespace and an optional CDATA wrapper before it is registered:
//
//	<script type="text/html" id="greeting"><![CDATA[
//		<p>Hello, {{name}}!</p>
//	]]></script>
//
// registers "greeting" as "<p>Hello, {{name}}!</p>".
package loader
