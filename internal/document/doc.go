// Package document renders the legal boilerplate documents docket creates.
//
// Three kinds exist: contract, memo and intake. Each is a markdown template
// with a few placeholders that are filled from the current settings and date:
//
//	{{firm_name}}      settings firm name
//	{{attorney_name}}  settings attorney name
//	{{bar_number}}     settings bar number
//	{{jurisdiction}}   settings default jurisdiction
//	{{date}}           today, formatted for the configured locale
//
// Values are inserted verbatim. Markdown in a settings value passes through
// unmodified, and substitution is a single pass.
//
// Templates are resolved in order:
//  1. <vault>/.docket/templates/<kind>.md (vault-local)
//  2. <config dir>/templates/<kind>.md (user global)
//  3. Built-in templates (embedded in binary)
package document
