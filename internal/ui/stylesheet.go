package ui

import "net/http"

// The stylesheet ships inline rather than as an embedded asset tree; one
// file is all the dashboard needs.
const appCSS = `
:root { --accent: #2563eb; --muted: #6b7280; --border: #e5e7eb; }
* { box-sizing: border-box; }
body { margin: 0; font-family: system-ui, -apple-system, sans-serif; color: #111827; background: #f9fafb; }
.layout { max-width: 1100px; margin: 0 auto; padding: 1.5rem; }
.topbar { display: flex; justify-content: space-between; align-items: center; }
.page-title { font-size: 1.4rem; }
.muted { color: var(--muted); font-size: 0.9rem; margin: 0.2rem 0; }
.nav { display: flex; gap: 1rem; border-bottom: 1px solid var(--border); margin: 0.75rem 0 1.25rem; padding-bottom: 0.5rem; }
.nav a { text-decoration: none; color: #374151; padding: 0.25rem 0.5rem; }
.nav a.active { color: var(--accent); border-bottom: 2px solid var(--accent); }
.card { background: #fff; border: 1px solid var(--border); border-radius: 8px; padding: 1rem 1.25rem; margin-bottom: 1rem; }
.card.error { border-color: #dc2626; }
.card.error pre { white-space: pre-wrap; color: #991b1b; }
label { display: block; font-weight: 600; margin: 0.5rem 0 0.2rem; font-size: 0.9rem; }
select, input, textarea { width: 100%; max-width: 28rem; padding: 0.4rem 0.5rem; border: 1px solid var(--border); border-radius: 6px; font: inherit; }
textarea { max-width: 100%; min-height: 8rem; font-family: ui-monospace, monospace; }
.button-row { display: flex; gap: 0.5rem; margin-top: 0.75rem; }
button { padding: 0.45rem 0.9rem; border-radius: 6px; border: 1px solid var(--border); cursor: pointer; font: inherit; }
button.primary { background: var(--accent); border-color: var(--accent); color: #fff; }
button.secondary { background: #fff; }
.filter-grid { display: grid; grid-template-columns: repeat(auto-fill, minmax(220px, 1fr)); gap: 0.75rem; }
.table-wrap { overflow-x: auto; }
table { border-collapse: collapse; width: 100%; font-size: 0.88rem; }
th, td { text-align: left; padding: 0.35rem 0.6rem; border-bottom: 1px solid var(--border); white-space: nowrap; }
th { background: #f3f4f6; position: sticky; top: 0; }
.snippet-list { display: flex; gap: 1rem; margin-bottom: 0.5rem; }
.bar-chart { margin: 0.75rem 0; }
.bar-row { display: grid; grid-template-columns: 10rem 1fr 5rem; align-items: center; gap: 0.5rem; margin: 0.2rem 0; }
.bar-label { overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.bar { background: var(--accent); height: 1rem; border-radius: 3px; min-width: 2px; }
.bar-value { text-align: right; font-variant-numeric: tabular-nums; }
`

func stylesheetHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	_, _ = w.Write([]byte(appCSS))
}
