package shell

import (
	"html/template"
)

// metaTag is one <meta name=... content=...> element.
type metaTag struct {
	Name    string
	Content string
}

type pageData struct {
	Title string
	Class string
	// Attrs are rendered name="value" pairs; names are checked identifiers.
	Attrs        []template.HTMLAttr
	RootStyle    template.CSS
	HeadScript   template.HTML
	AttachScript template.HTML
	Metas        []metaTag
	Controls     template.HTML
	Content      template.HTML
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html lang="en"{{with .Class}} class="{{.}}"{{end}}{{range .Attrs}} {{.}}{{end}}{{with .RootStyle}} style="{{.}}"{{end}}>
<head>
<meta charset="utf-8">
<meta name="color-scheme" content="light dark">
{{- range .Metas}}
<meta name="{{.Name}}" content="{{.Content}}">
{{- end}}
{{.HeadScript}}
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/theme.css">
</head>
<body>
<header class="theme-toolbar">{{.Controls}}</header>
{{.Content}}
{{.AttachScript}}
</body>
</html>
`))

// page describes one placeholder host page.
type page struct {
	title   string
	control controlKind
	body    *template.Template
}

type controlKind int

const (
	controlToggle controlKind = iota
	controlMenu
)

var contentTemplates = template.Must(template.New("content").Parse(`
{{- define "login" -}}
<main class="auth-paper">
<h1>Sign in</h1>
<p>Use your account to continue.</p>
<hr class="auth-divider">
<p><a href="/register">Create an account</a></p>
<p><a href="/forgot-password">Forgot password?</a></p>
</main>
{{- end -}}

{{- define "register" -}}
<main class="auth-paper">
<h1>Create an account</h1>
<hr class="auth-divider">
<p><a href="/login">Already registered? Sign in</a></p>
</main>
{{- end -}}

{{- define "dashboard" -}}
<main class="dashboard">
<h1>Dashboard</h1>
<p>Theme: {{.Mode}} ({{.Effective}})</p>
</main>
{{- end -}}
`))

var pages = map[string]page{
	"/":          {title: "Sign in", control: controlToggle, body: contentTemplates.Lookup("login")},
	"/login":     {title: "Sign in", control: controlToggle, body: contentTemplates.Lookup("login")},
	"/register":  {title: "Create an account", control: controlToggle, body: contentTemplates.Lookup("register")},
	"/dashboard": {title: "Dashboard", control: controlMenu, body: contentTemplates.Lookup("dashboard")},
}
