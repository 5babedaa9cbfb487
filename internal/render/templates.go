package render

// Page templates. Class names are the mood presentation tokens; the served
// stylesheet maps them, which keeps MoodInfo the single source of styling.

const viewTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{ subject }}</title>
</head>
<body class="newsletter">
  <main class="card {{ color }} {{ border }}">
    <header>
      <span class="mood-icon">{{ icon }}</span>
      <h1 class="{{ text }}">{{ subject }}</h1>
      <p class="sent-on">Sent on {{ sentOn }}</p>
    </header>
    <article class="{{ text }}">
      <p>{{ body }}</p>
    </article>
    <footer>
      {% if clicked %}
      <div class="thanks">
        <strong>✅ Thank you for your interest!</strong>
        <p>We've recorded your click and will be in touch soon.</p>
      </div>
      {% else %}
      <form method="post" action="{{ clickPath }}">
        <button type="submit" class="cta {{ ctaColor }}">{{ cta }}</button>
      </form>
      {% endif %}
    </footer>
  </main>
  <aside class="stats">
    <h2>📊 Newsletter Analytics</h2>
    <dl>
      <div><dt>Total Recipients</dt><dd>{{ recipients }}</dd></div>
      <div><dt>Opens</dt><dd>{{ opens }}</dd></div>
      <div><dt>Clicks</dt><dd>{{ clicks }}</dd></div>
    </dl>
  </aside>
</body>
</html>`

const notFoundTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{ title }}</title>
</head>
<body class="not-found">
  <main>
    <span class="icon">{{ icon }}</span>
    <h1>{{ title }}</h1>
    <p>{{ message }}</p>
  </main>
</body>
</html>`
