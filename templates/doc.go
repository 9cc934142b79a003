// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package templates resolves page templates by name and renders them.

# Resolution

A Resolver reads templates from an fs.FS rooted at the template directory:

	resolver := templates.NewResolver(os.DirFS(cfg.TemplateDir))
	res, err := resolver.Render("post/"+slug+".html", ctx)

Render returns an explicit Result. res.Found is false when the template does
not exist, the name is a directory, a path element is a file, or the name is
not a valid path inside the root (for example a slug containing ".."). Callers map that to 404. err is reserved for templates that
exist but fail to parse or execute.

There is no cache: every call reads the file again.

# Engines

  - .xml: text/template (Atom feed, timeline data)
  - everything else: html/template, with partials/*.html parsed into the
    same set so pages can call {{template "header" .}}. Partials are parsed
    first; a page that defines a block of the same name replaces it.

# Functions

	naturaltime  humanized relative time ("2 hours ago")
	intcomma     thousands separators for int64
	date         Go layout formatting: {{date "2006-01-02" .PubDate}}
	rfc3339      UTC RFC 3339 timestamp for Atom
	lower/upper  case folding
*/
package templates
