// content.go holds the static portfolio payloads rendered by the shell
// commands. Plain strings; styling is the host's job.

package shell

import "strings"

const bannerArt = `
  ____       _          _      _   __  __       _   _
 / ___| __ _| |__  _ __(_) ___| | |  \/  | __ _| |_| |_ ___  ___
| |  _ / _` + "`" + ` | '_ \| '__| |/ _ \ | | |\/| |/ _` + "`" + ` | __| __/ _ \/ __|
| |_| | (_| | |_) | |  | |  __/ | | |  | | (_| | |_| || (_) \__ \
 \____|\__,_|_.__/|_|  |_|\___|_| |_|  |_|\__,_|\__|\__\___/|___/
`

// Banner returns the welcome banner shown at startup and by `banner`.
func Banner() string {
	return strings.TrimLeft(bannerArt, "\n") +
		"\nbackend engineer · distributed systems · terminal enthusiast\n" +
		"type 'help' to see what this shell can do, or 'snake' if you are bored.\n"
}

const aboutText = `Hi, I'm Gabriel Mattos.

I'm a backend engineer who spends most days in Go, building the unglamorous
plumbing that keeps products alive: APIs, schedulers, data pipelines, and
the occasional heroic shell script. I care about systems that are boring to
operate and fast to reason about.

When I'm not working I'm usually tweaking my editor config, losing at chess,
or adding one more feature to this terminal that nobody asked for.
`

const skillsText = `languages
  Go (daily driver), Python, SQL, a dangerous amount of Bash

backend
  HTTP/gRPC services, websockets, message queues, caching,
  PostgreSQL, Redis, observability (metrics, tracing, structured logs)

infra
  Docker, Kubernetes, Terraform, GitHub Actions, Linux everything

front-of-house
  enough TypeScript to be trusted near a browser, terminal UIs
`

const projectsText = `terminal-card-shell
  this site: a portfolio that pretends to be a terminal, with a snake
  game hiding inside. Go, Bubble Tea, and an HTTP mirror of the same shell.

queuewatch
  a small daemon that tails message-queue depth across clusters and pages
  before consumers fall over, not after.

pgsnap
  point-in-time PostgreSQL snapshot tooling for staging environments;
  restores a 200 GB database to a branch in under a minute.
`

const experienceText = `2021-now   senior backend engineer, fintech scale-up
           payments infrastructure in Go; led the move from a cron-based
           settlement batch to an event-driven pipeline.

2018-2021  backend engineer, logistics startup
           routing APIs, fleet telemetry ingestion, far too many maps.

2016-2018  sysadmin turned developer
           where the terminal habit started.
`

const contactText = `The fastest way to reach me is email: gabriel@gbrlmtts.dev
I read it more often than any inbox shaped like a bird or a briefcase.
`

// Links are the social links, keyed by site name. Exposed for the web
// mirror's JSON API.
var Links = map[string]string{
	"github":   "https://github.com/gbrlmtts",
	"linkedin": "https://www.linkedin.com/in/gbrlmtts",
	"email":    "mailto:gabriel@gbrlmtts.dev",
	"blog":     "https://gbrlmtts.dev/blog",
}
