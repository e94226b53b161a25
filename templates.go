package main

import "html/template"

// raw marks post text as trusted markup. Titles go through the normal
// auto-escaping; text is rendered verbatim.
func raw(s string) template.HTML {
	return template.HTML(s)
}

func loadTemplates() map[string]*template.Template {
	templates := make(map[string]*template.Template)
	pages := []string{"index.html", "login.html"}

	funcs := template.FuncMap{
		"raw": raw,
	}

	for _, page := range pages {
		templates[page] = template.Must(
			template.New("").Funcs(funcs).ParseFiles(
				"templates/base.html",
				"templates/"+page,
			))
	}

	return templates
}
