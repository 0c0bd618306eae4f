package render

import "html/template"

// One skeleton serves every layout; the Layout value decides column
// structure, section order and styling, so preview and export cannot
// drift apart per template.
var cvTemplate = template.Must(template.New("cv").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<style>
  body { margin: 0; font-family: {{.Layout.FontFamily}}; color: #2b2b2b; background: #fff; }
  .page { max-width: 820px; margin: 0 auto; }
  header.cv-header { background: {{.Layout.Accent}}; color: #fff; padding: 28px 32px; }
  header.cv-header h1 { margin: 0 0 4px; font-size: 28px; }
  header.cv-header .job-title { font-size: 15px; opacity: .9; }
  header.cv-header .contact { margin-top: 10px; font-size: 12px; }
  header.cv-header .contact span { margin-right: 14px; }
  .body { display: flex; }
  .sidebar { width: 34%; background: {{.Layout.Background}}; padding: 20px 22px; box-sizing: border-box; }
  .main { flex: 1; padding: 20px 26px; box-sizing: border-box; }
  .single { padding: 20px 26px; }
  h2 { font-size: 14px; text-transform: uppercase; letter-spacing: .06em;
       color: {{.Layout.Accent}}; border-bottom: 1px solid {{.Layout.Accent}};
       padding-bottom: 3px; margin: 18px 0 8px; }
  .entry { margin-bottom: 10px; font-size: 12.5px; }
  .entry .title { font-weight: bold; }
  .entry .meta { color: #666; font-size: 11.5px; }
  .badge { display: inline-block; background: {{.Layout.Background}}; border: 1px solid {{.Layout.Accent}};
           color: {{.Layout.Accent}}; border-radius: 10px; padding: 2px 9px; margin: 0 5px 5px 0; font-size: 11.5px; }
  p.summary { font-size: 12.5px; line-height: 1.55; margin: 0; }
  @media print { .page { max-width: none; } }
</style>
</head>
<body>
<div class="page">
  <header class="cv-header">
    <h1>{{.View.FullName}}</h1>
    <div class="job-title">{{.View.JobTitle}}</div>
    <div class="contact">
      <span>{{.View.Email}}</span>
      <span>{{.View.Phone}}</span>
      <span>{{.View.City}}{{if .View.Country}}, {{.View.Country}}{{end}}</span>
    </div>
  </header>
  {{if .Layout.TwoColumn}}
  <div class="body">
    <aside class="sidebar">
      {{range .Layout.Sidebar}}{{template "section" (index $.Sections .)}}{{end}}
    </aside>
    <div class="main">
      {{range .Layout.Main}}{{template "section" (index $.Sections .)}}{{end}}
    </div>
  </div>
  {{else}}
  <div class="single">
    {{range .Layout.Main}}{{template "section" (index $.Sections .)}}{{end}}
  </div>
  {{end}}
</div>
</body>
</html>

{{define "section"}}{{if .Show}}<section>
  <h2>{{.Title}}</h2>
  {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
  {{range .Entries}}<div class="entry">
    {{if .Title}}<div class="title">{{.Title}}</div>{{end}}
    {{if .Subtitle}}<div>{{.Subtitle}}</div>{{end}}
    {{if .Meta}}<div class="meta">{{.Meta}}</div>{{end}}
    {{if .Body}}<div>{{.Body}}</div>{{end}}
  </div>{{end}}
  {{range .Badges}}<span class="badge">{{.}}</span>{{end}}
</section>{{end}}{{end}}`))

var letterTemplate = template.Must(template.New("letter").Parse(`<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="UTF-8">
<style>
  body { margin: 0; font-family: {{.Layout.FontFamily}}; color: #2b2b2b; background: #fff; }
  .page { max-width: 760px; margin: 0 auto; padding: 40px 48px; box-sizing: border-box; }
  .sender { border-bottom: 3px solid {{.Layout.Accent}}; padding-bottom: 12px; margin-bottom: 20px; }
  .sender .name { font-size: 22px; font-weight: bold; color: {{.Layout.Accent}}; }
  .sender .contact { font-size: 12px; color: #555; margin-top: 4px; }
  .date { text-align: right; font-size: 12.5px; margin-bottom: 18px; }
  .recipient { font-size: 12.5px; margin-bottom: 18px; }
  .subject { font-weight: bold; font-size: 13px; margin-bottom: 16px; }
  .body { font-size: 13px; line-height: 1.7; white-space: pre-line; }
  .signature { margin-top: 34px; font-size: 13px; }
  .signature .name { font-weight: bold; }
</style>
</head>
<body>
<div class="page">
  <div class="sender">
    <div class="name">{{.Letter.Sender.FullName}}</div>
    <div class="contact">{{.Letter.Sender.Email}} · {{.Letter.Sender.Phone}} · {{.Letter.Sender.City}}</div>
  </div>
  <div class="date">{{.Letter.Date}}</div>
  <div class="recipient">
    {{.Letter.Recipient.Department}}<br>
    {{.Letter.Recipient.Company}}<br>
    {{if .Letter.Recipient.Address}}{{.Letter.Recipient.Address}}<br>{{end}}
    {{.Letter.Recipient.City}}{{if .Letter.Recipient.Country}}, {{.Letter.Recipient.Country}}{{end}}
  </div>
  <div class="subject">Ref.: {{.Letter.Subject}}</div>
  <div class="body">{{.Letter.Body}}</div>
  <div class="signature">
    Atentamente,<br>
    <span class="name">{{.Letter.Sender.FullName}}</span>
  </div>
</div>
</body>
</html>`))
