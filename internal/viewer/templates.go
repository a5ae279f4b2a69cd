package viewer

// modulePageTemplate is the Go html/template for a rendered module document.
const modulePageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>{{.Title}} — Dev Logs</title>
  <link rel="stylesheet" href="/style.css">
</head>
<body>
  <main class="content">
    <div class="top-bar">
      <a class="back-link" href="/">&larr; All modules</a>
      <h1 class="page-title">{{.Title}}</h1>
      <div class="actions">
        <a class="action-btn" href="{{.CompanionURL}}" target="_blank" rel="noopener">Download PDF</a>
        <a class="action-btn" href="{{.SourceURL}}" target="_blank" rel="noopener">View on GitHub</a>
        <form method="post" action="/theme/toggle">
          <button class="theme-toggle" type="submit" aria-label="Toggle theme">
            <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
              <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/><line x1="4.22" y1="4.22" x2="5.64" y2="5.64"/><line x1="18.36" y1="18.36" x2="19.78" y2="19.78"/><line x1="1" y1="12" x2="3" y2="12"/><line x1="21" y1="12" x2="23" y2="12"/><line x1="4.22" y1="19.78" x2="5.64" y2="18.36"/><line x1="18.36" y1="5.64" x2="19.78" y2="4.22"/>
            </svg>
            <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
              <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
            </svg>
          </button>
        </form>
      </div>
    </div>
    <article class="page-content">
      {{.Content}}
    </article>
  </main>
</body>
</html>`

// errorPageTemplate is shown on hard fetch failures. The only recovery path
// is navigating home.
const errorPageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Error — Dev Logs</title>
  <link rel="stylesheet" href="/style.css">
</head>
<body>
  <main class="content error-page">
    <h1 class="page-title">Something went wrong</h1>
    <p class="error-message">{{.Message}}</p>
    <a class="action-btn" href="/">Go home</a>
  </main>
</body>
</html>`

// indexPageTemplate lists the known modules.
const indexPageTemplate = `<!DOCTYPE html>
<html lang="en" data-theme="{{.Theme}}">
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Dev Logs</title>
  <link rel="stylesheet" href="/style.css">
</head>
<body>
  <main class="content">
    <div class="top-bar">
      <h1 class="page-title">Dev Logs</h1>
      <div class="actions">
        <form method="post" action="/theme/toggle">
          <button class="theme-toggle" type="submit" aria-label="Toggle theme">
            <svg class="sun-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
              <circle cx="12" cy="12" r="5"/><line x1="12" y1="1" x2="12" y2="3"/><line x1="12" y1="21" x2="12" y2="23"/>
            </svg>
            <svg class="moon-icon" width="20" height="20" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2">
              <path d="M21 12.79A9 9 0 1 1 11.21 3 7 7 0 0 0 21 12.79z"/>
            </svg>
          </button>
        </form>
      </div>
    </div>
    <ul class="module-list">
      {{range .Modules}}
      <li><a href="/modules/{{.ID}}">{{.DisplayName}}</a></li>
      {{end}}
    </ul>
  </main>
</body>
</html>`

// cssContent is the stylesheet for all viewer pages.
const cssContent = `/* ============ CSS Variables ============ */
:root {
  --bg: #ffffff;
  --bg-secondary: #f8f9fa;
  --text: #212529;
  --text-secondary: #495057;
  --border: #dee2e6;
  --accent: #228be6;
  --accent-hover: #1c7ed6;
  --code-bg: #f1f3f5;
  --link: #228be6;
  --content-max-width: 900px;
}

[data-theme="dark"] {
  --bg: #1a1b26;
  --bg-secondary: #1f2030;
  --text: #c0caf5;
  --text-secondary: #a9b1d6;
  --border: #292e42;
  --accent: #7aa2f7;
  --accent-hover: #89b4fa;
  --code-bg: #1f2030;
  --link: #7aa2f7;
}

/* ============ Reset & Base ============ */
*, *::before, *::after {
  box-sizing: border-box;
  margin: 0;
  padding: 0;
}

body {
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  color: var(--text);
  background: var(--bg);
  line-height: 1.7;
  min-height: 100vh;
}

.content {
  max-width: var(--content-max-width);
  margin: 0 auto;
  padding: 2rem 1.5rem;
}

/* ============ Top Bar ============ */
.top-bar {
  display: flex;
  align-items: center;
  gap: 1rem;
  flex-wrap: wrap;
  padding-bottom: 1rem;
  margin-bottom: 2rem;
  border-bottom: 1px solid var(--border);
}

.page-title {
  font-size: 1.5rem;
  flex: 1;
}

.back-link {
  color: var(--link);
  text-decoration: none;
}

.actions {
  display: flex;
  align-items: center;
  gap: 0.5rem;
}

.action-btn {
  display: inline-block;
  padding: 0.4rem 0.9rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg-secondary);
  color: var(--text);
  text-decoration: none;
  font-size: 0.9rem;
}

.action-btn:hover {
  border-color: var(--accent);
  color: var(--accent);
}

.theme-toggle {
  display: flex;
  align-items: center;
  padding: 0.4rem;
  border: 1px solid var(--border);
  border-radius: 6px;
  background: var(--bg-secondary);
  color: var(--text);
  cursor: pointer;
}

[data-theme="light"] .moon-icon { display: none; }
[data-theme="dark"] .sun-icon { display: none; }

/* ============ Module List ============ */
.module-list {
  list-style: none;
}

.module-list li {
  border-bottom: 1px solid var(--border);
}

.module-list a {
  display: block;
  padding: 0.9rem 0.5rem;
  color: var(--link);
  text-decoration: none;
  font-size: 1.05rem;
}

.module-list a:hover {
  background: var(--bg-secondary);
}

/* ============ Page Content ============ */
.page-content h1, .page-content h2, .page-content h3 {
  margin: 1.5rem 0 0.75rem;
}

.page-content p, .page-content ul, .page-content ol {
  margin-bottom: 1rem;
}

.page-content ul, .page-content ol {
  padding-left: 1.5rem;
}

.page-content a {
  color: var(--link);
}

.page-content code {
  background: var(--code-bg);
  padding: 0.15rem 0.35rem;
  border-radius: 4px;
  font-size: 0.9em;
}

.page-content pre {
  background: var(--code-bg);
  border: 1px solid var(--border);
  border-radius: 8px;
  padding: 1rem;
  overflow-x: auto;
  margin-bottom: 1rem;
}

.page-content pre code {
  background: none;
  padding: 0;
}

.page-content blockquote {
  border-left: 3px solid var(--accent);
  padding-left: 1rem;
  color: var(--text-secondary);
  margin-bottom: 1rem;
}

.page-content table {
  border-collapse: collapse;
  margin-bottom: 1rem;
  width: 100%;
}

.page-content th, .page-content td {
  border: 1px solid var(--border);
  padding: 0.5rem 0.75rem;
  text-align: left;
}

/* ============ Error Page ============ */
.error-page {
  text-align: center;
  padding-top: 6rem;
}

.error-message {
  color: var(--text-secondary);
  margin: 1rem 0 2rem;
}
`
