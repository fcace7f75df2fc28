package render

const reportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.TeamName}} Weekly Brief</title>
<style>
  :root {
    --ink: #1c2733;
    --muted: #6b7a8c;
    --accent: #0b6e4f;
    --card: #ffffff;
    --bg: #f2f4f7;
    --positive: #2e9e5b;
    --neutral: #9aa7b5;
    --negative: #d9534f;
  }
  body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, Helvetica, Arial, sans-serif;
         background: var(--bg); color: var(--ink); margin: 0 auto; max-width: 820px; padding: 24px; line-height: 1.55; }
  header { text-align: center; margin-bottom: 28px; }
  header h1 { margin: 0; font-size: 1.9em; }
  header .date { color: var(--muted); margin: 4px 0 0; }
  header .season { display: inline-block; margin-top: 10px; padding: 3px 12px; border-radius: 999px;
                   background: var(--accent); color: #fff; font-size: 0.85em; }
  .card { background: var(--card); border-radius: 10px; padding: 20px 24px; margin-bottom: 20px;
          box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
  .card h2 { margin-top: 0; font-size: 1.15em; }
  .meter { background: #e6eaef; border-radius: 999px; height: 10px; overflow: hidden; margin: 10px 0; }
  .meter span { display: block; height: 100%; background: var(--accent); }
  .score-line { display: flex; justify-content: space-between; color: var(--muted); font-size: 0.9em; }
  .bars { margin: 12px 0; }
  .bars .row { display: flex; align-items: center; gap: 8px; font-size: 0.85em; margin: 4px 0; }
  .bars .label { width: 70px; color: var(--muted); }
  .bars .bar { flex: 1; background: #e6eaef; border-radius: 4px; height: 8px; overflow: hidden; }
  .bars .bar span { display: block; height: 100%; }
  .bars .positive span { background: var(--positive); }
  .bars .neutral span { background: var(--neutral); }
  .bars .negative span { background: var(--negative); }
  .chips { margin-top: 10px; }
  .chips span { display: inline-block; background: #eef2f6; border-radius: 999px; padding: 2px 10px;
                margin: 2px 4px 2px 0; font-size: 0.82em; color: var(--ink); }
  blockquote { border-left: 3px solid var(--accent); margin: 10px 0; padding: 4px 12px; color: var(--ink);
               background: #fafbfc; }
  blockquote footer { color: var(--muted); font-size: 0.85em; }
  ul.headlines { list-style: none; padding: 0; margin: 0; }
  ul.headlines li { padding: 8px 0; border-bottom: 1px solid #edf0f3; }
  ul.headlines li:last-child { border-bottom: none; }
  ul.headlines .meta { color: var(--muted); font-size: 0.85em; }
  a { color: var(--accent); text-decoration: none; }
  .war-item { margin: 12px 0; }
  .war-item b { display: block; }
  .footer { text-align: center; color: var(--muted); font-size: 0.8em; margin-top: 26px; }
</style>
</head>
<body>
<header>
  <h1>{{.TeamName}} Weekly Brief</h1>
  <p class="date">{{.GeneratedAt.Format "January 2, 2006"}}</p>
  <span class="season">{{.Synthesis.SeasonNote}}</span>
</header>

<div class="card">
  <h2>Executive Summary</h2>
  <p>{{.Synthesis.ExecutiveSummary}}</p>
</div>

<div class="card">
  <h2>Fan Sentiment: {{.Synthesis.SentimentLabel}}</h2>
  <div class="meter"><span style="width: {{meterPct .Synthesis.SentimentScore}}%"></span></div>
  <div class="score-line">
    <span>{{scoreText .Synthesis.SentimentScore}}</span>
    <span>{{.Synthesis.SentimentTrend}}</span>
  </div>
  <div class="bars">
    <div class="row positive"><span class="label">Positive</span><div class="bar"><span style="width: {{.Synthesis.SentimentBreakdown.Positive}}%"></span></div><span>{{.Synthesis.SentimentBreakdown.Positive}}%</span></div>
    <div class="row neutral"><span class="label">Neutral</span><div class="bar"><span style="width: {{.Synthesis.SentimentBreakdown.Neutral}}%"></span></div><span>{{.Synthesis.SentimentBreakdown.Neutral}}%</span></div>
    <div class="row negative"><span class="label">Negative</span><div class="bar"><span style="width: {{.Synthesis.SentimentBreakdown.Negative}}%"></span></div><span>{{.Synthesis.SentimentBreakdown.Negative}}%</span></div>
  </div>
  {{if .Synthesis.Keywords}}
  <div class="chips">{{range .Synthesis.Keywords}}<span>{{.}}</span>{{end}}</div>
  {{end}}
  {{with index .RawByCategory (cat "community")}}
  <h3>Top Community Takes</h3>
  {{range .}}{{if .Summary}}
  <blockquote><p>{{.Summary}}</p><footer>{{.Source}} on "{{.Title}}"</footer></blockquote>
  {{end}}{{end}}
  {{end}}
</div>

<div class="card">
  <h2>War Room</h2>
  <p>{{.Synthesis.WarRoomIntro}}</p>
  {{range .Synthesis.WarRoomItems}}
  <div class="war-item">
    <b>{{.Headline}}</b>
    {{.Analysis}}
    {{range .RelatedLinks}} <a href="{{.}}">[link]</a>{{end}}
  </div>
  {{end}}
</div>

<div class="card">
  <h2>This Week's Headlines</h2>
  <ul class="headlines">
  {{range index .RawByCategory (cat "news")}}
    <li><a href="{{.Link}}">{{.Title}}</a><div class="meta">{{.Source}}{{with age .PublishedAt}} &middot; {{.}}{{end}}</div></li>
  {{end}}
  </ul>
  <h3>Front Office &amp; Roster</h3>
  <ul class="headlines">
  {{range index .RawByCategory (cat "seasonal")}}
    <li><a href="{{.Link}}">{{.Title}}</a><div class="meta">{{.Source}}{{with age .PublishedAt}} &middot; {{.}}{{end}}</div></li>
  {{end}}
  </ul>
</div>

<p class="footer">
  Generated {{.GeneratedAt.Format "2006-01-02 15:04 MST"}} &middot; run {{.RunID}}
  {{if .Degraded}}&middot; model synthesis unavailable, rule-based summary shown{{end}}
</p>
</body>
</html>
`
