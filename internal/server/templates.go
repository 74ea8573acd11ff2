package server

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<link rel="stylesheet" href="/assets/style.css">
</head>
<body>
<h2 style="text-align: center">{{.Title}}</h2>
<div class="options-container">
{{- range .Panes}}
  <select data-slot="{{.Slot}}" aria-label="{{.Slot}} document">
  {{- $current := .Document}}
  {{- range $.Documents}}
    <option value="{{.}}"{{if eq . $current}} selected{{end}}>{{.}}</option>
  {{- end}}
  </select>
{{- end}}
</div>
<div class="markdown-container">
{{- range .Panes}}
  <section class="markdown-body" id="pane-{{.Slot}}" data-state="{{.State}}">{{.HTML}}</section>
{{- end}}
</div>
<script src="/assets/app.js"></script>
</body>
</html>
`

const cssContent = `*, *::before, *::after { box-sizing: border-box; }
body {
  margin: 0;
  padding: 16px;
  font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Helvetica, Arial, sans-serif;
  color: #1f2328;
  background: #ffffff;
}
.options-container {
  display: flex;
  justify-content: space-around;
  margin-bottom: 16px;
}
.options-container select {
  min-width: 12rem;
  padding: 4px 8px;
  font-size: 1rem;
}
.markdown-container {
  display: flex;
  gap: 16px;
  align-items: flex-start;
}
.markdown-body {
  flex: 1 1 0;
  min-width: 0;
  padding: 24px;
  border: 1px solid #d0d7de;
  border-radius: 6px;
  font-size: 16px;
  line-height: 1.5;
  word-wrap: break-word;
}
.markdown-body[data-state="fetching"] { opacity: 0.6; }
.markdown-body h1, .markdown-body h2 {
  padding-bottom: .3em;
  border-bottom: 1px solid #d8dee4;
}
.markdown-body h1, .markdown-body h2, .markdown-body h3,
.markdown-body h4, .markdown-body h5, .markdown-body h6 {
  margin-top: 24px;
  margin-bottom: 16px;
  font-weight: 600;
  line-height: 1.25;
}
.markdown-body code {
  padding: .2em .4em;
  font-size: 85%;
  background-color: rgba(175, 184, 193, 0.2);
  border-radius: 6px;
  font-family: ui-monospace, SFMono-Regular, Menlo, Consolas, monospace;
}
.markdown-body pre {
  padding: 16px;
  overflow: auto;
  font-size: 85%;
  line-height: 1.45;
  border-radius: 6px;
}
.markdown-body pre code { padding: 0; background: transparent; }
.markdown-body table { border-collapse: collapse; display: block; overflow: auto; }
.markdown-body table th, .markdown-body table td {
  padding: 6px 13px;
  border: 1px solid #d0d7de;
}
.markdown-body blockquote {
  margin: 0;
  padding: 0 1em;
  color: #59636e;
  border-left: .25em solid #d0d7de;
}
@media (max-width: 800px) {
  .markdown-container { flex-direction: column; }
  .markdown-body { width: 100%; }
}
`

const jsContent = `(function () {
  'use strict';

  var socket = null;
  var queued = [];

  function paneEl(slot) { return document.getElementById('pane-' + slot); }

  function applyPane(pane) {
    var el = paneEl(pane.slot);
    if (!el) return;
    el.innerHTML = pane.html;
    el.setAttribute('data-state', pane.state);
  }

  function applyState(state) {
    state.panes.forEach(function (pane) {
      applyPane(pane);
      var sel = document.querySelector('select[data-slot="' + pane.slot + '"]');
      if (sel && sel.value !== pane.document) sel.value = pane.document;
    });
  }

  function postSelection(slot, name) {
    fetch('/api/selection/' + encodeURIComponent(slot), {
      method: 'POST',
      headers: { 'Content-Type': 'application/json' },
      credentials: 'same-origin',
      body: JSON.stringify({ name: name })
    }).then(function (res) { return res.json(); })
      .then(applyState)
      .catch(function (err) { console.error('selection update failed: ' + err); });
  }

  function select(slot, name) {
    if (socket && socket.readyState === WebSocket.OPEN) {
      socket.send(JSON.stringify({ type: 'select', slot: slot, name: name }));
    } else if (socket && socket.readyState === WebSocket.CONNECTING) {
      queued.push({ slot: slot, name: name });
    } else {
      postSelection(slot, name);
    }
  }

  function connect() {
    var proto = location.protocol === 'https:' ? 'wss://' : 'ws://';
    socket = new WebSocket(proto + location.host + '/ws');
    socket.onopen = function () {
      queued.splice(0).forEach(function (q) { select(q.slot, q.name); });
    };
    socket.onmessage = function (ev) {
      var msg = JSON.parse(ev.data);
      if (msg.type === 'state') applyState(msg.state);
      else if (msg.type === 'pane') applyPane(msg.pane);
      else if (msg.type === 'error') console.error(msg.message);
    };
    socket.onclose = function () {
      socket = null;
      setTimeout(connect, 2000);
    };
  }

  document.querySelectorAll('select[data-slot]').forEach(function (sel) {
    sel.addEventListener('change', function () {
      select(sel.getAttribute('data-slot'), sel.value);
    });
  });

  connect();
})();
`
