// page.go embeds the browser terminal. One self-contained document: the
// shell talks to /api/run, the snake overlay talks to /ws/snake.

package web

const indexHTML = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>gbrlmtts — terminal</title>
<style>
  body { background: #0c0c0c; color: #d0d0d0; font-family: "JetBrains Mono", "Fira Code", monospace; margin: 0; }
  #term { padding: 1.5rem; white-space: pre-wrap; word-break: break-word; }
  .prompt { color: #2ecc71; font-weight: bold; }
  .out { color: #bbbbbb; }
  #inputline { display: flex; }
  #cmd { background: transparent; border: none; outline: none; color: #d0d0d0;
         font: inherit; flex: 1; }
  #snake { display: none; padding: 1.5rem; }
  #board { color: #2ecc71; line-height: 1.1; }
  #snakestatus { color: #e67e22; }
</style>
</head>
<body>
<div id="term">
  <div id="scrollback"></div>
  <div id="inputline"><span class="prompt">gbrlmtts@portfolio:~$&nbsp;</span><input id="cmd" autofocus autocomplete="off"></div>
</div>
<div id="snake">
  <div id="snakestatus"></div>
  <pre id="board"></pre>
  <div class="out">arrows move &middot; space pause &middot; r restart &middot; esc back to shell</div>
</div>
<script>
const scrollback = document.getElementById("scrollback");
const input = document.getElementById("cmd");
const term = document.getElementById("term");
const snakeDiv = document.getElementById("snake");
const boardPre = document.getElementById("board");
const snakeStatus = document.getElementById("snakestatus");
let ws = null;

function print(html) {
  const div = document.createElement("div");
  div.innerHTML = html;
  scrollback.appendChild(div);
  window.scrollTo(0, document.body.scrollHeight);
}

function esc(s) {
  return s.replace(/&/g, "&amp;").replace(/</g, "&lt;").replace(/>/g, "&gt;");
}

async function run(line) {
  print('<span class="prompt">gbrlmtts@portfolio:~$</span> ' + esc(line));
  const resp = await fetch("/api/run?cmd=" + encodeURIComponent(line));
  const res = await resp.json();
  if (res.action === "clear") { scrollback.innerHTML = ""; return; }
  if (res.action === "snake") { enterSnake(); return; }
  if (res.output) print('<span class="out">' + esc(res.output) + "</span>");
  if (res.action === "exit") print('<span class="out">(this tab is the terminal — just close it)</span>');
}

input.addEventListener("keydown", (e) => {
  if (e.key !== "Enter") return;
  const line = input.value;
  input.value = "";
  run(line);
});

function enterSnake() {
  term.style.display = "none";
  snakeDiv.style.display = "block";
  const proto = location.protocol === "https:" ? "wss" : "ws";
  ws = new WebSocket(proto + "://" + location.host + "/ws/snake");
  ws.onmessage = (e) => {
    const f = JSON.parse(e.data);
    boardPre.textContent = f.rows.join("\n");
    let status = "score " + f.score + "  high " + f.high_score + "  tick " + f.interval_ms + "ms";
    if (f.over) status += "  — GAME OVER (r to restart)";
    else if (f.paused) status += "  — PAUSED";
    snakeStatus.textContent = status;
  };
  ws.onclose = leaveSnake;
}

function leaveSnake() {
  if (ws) { ws.onclose = null; ws.close(); ws = null; }
  snakeDiv.style.display = "none";
  term.style.display = "block";
  input.focus();
}

document.addEventListener("keydown", (e) => {
  if (!ws || snakeDiv.style.display === "none") return;
  const dirs = { ArrowUp: "up", ArrowDown: "down", ArrowLeft: "left", ArrowRight: "right",
                 w: "up", s: "down", a: "left", d: "right" };
  if (e.key in dirs) { ws.send(JSON.stringify({ op: "dir", dir: dirs[e.key] })); e.preventDefault(); }
  else if (e.key === " " || e.key === "p") { ws.send(JSON.stringify({ op: "pause" })); e.preventDefault(); }
  else if (e.key === "r") { ws.send(JSON.stringify({ op: "restart" })); }
  else if (e.key === "Escape") { leaveSnake(); }
});

run("banner");
</script>
</body>
</html>
`
