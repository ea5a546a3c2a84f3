// Package templates holds the templ components for the application steps.
// Components are built with templ.ComponentFunc; the views are a thin layer
// over the draft state and post back to one store operation each.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

// Step identifies the wizard step a page belongs to, for the progress bar.
type Step int

const (
	StepCompany Step = iota + 1
	StepProjects
	StepOverview
)

const stepCount = 3

// Layout wraps a page body with the document shell, the progress header and
// the toast listener.
func Layout(subtitle string, step Step, programYear int, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := fmt.Sprintf("WBSO Aanvraag %d", programYear)

		fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="nl">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<script src="https://unpkg.com/htmx.org@1.9.12"></script>
<link rel="stylesheet" href="/static/app.css">
</head>
<body>
<main class="container">
<header class="progress-header">
<h1>%s</h1>
<div class="progress-blocks">`, templ.EscapeString(title), templ.EscapeString(title))

		for i := Step(1); i <= stepCount; i++ {
			cls := "progress-block"
			if i <= step {
				cls += " done"
			}
			fmt.Fprintf(w, `<span class="%s"></span>`, cls)
		}

		fmt.Fprintf(w, `</div>
<h2>%s</h2>
</header>
`, templ.EscapeString(subtitle))

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		_, err := io.WriteString(w, `</main>
<div id="toast" class="toast" hidden></div>
<script>
function showToast(message, type) {
  var el = document.getElementById("toast");
  el.textContent = message;
  el.className = "toast " + (type || "info");
  el.hidden = false;
  setTimeout(function () { el.hidden = true; }, 4000);
}
document.body.addEventListener("showToast", function (evt) {
  showToast(evt.detail.message, evt.detail.type);
});
(function () {
  var m = document.cookie.match(/(?:^|; )flash_toast=([^;]*)/);
  if (!m) return;
  document.cookie = "flash_toast=; Max-Age=0; path=/";
  try {
    var t = JSON.parse(decodeURIComponent(m[1]));
    showToast(t.message, t.type);
  } catch (e) {}
})();
</script>
</body>
</html>
`)
		return err
	})
}

// fieldError writes the inline error line under a form field, if any.
func fieldError(w io.Writer, errors map[string]string, field string) {
	if msg, ok := errors[field]; ok {
		fmt.Fprintf(w, `<p class="field-error">%s</p>`, templ.EscapeString(msg))
	}
}
