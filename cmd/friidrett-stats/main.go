// Command friidrett-stats syncs Norwegian athletics season lists into a
// local SQLite database and reports on what was ingested.
package main

import "github.com/pfrederiksen/friidrett-stats/internal/cli"

func main() {
	cli.Execute()
}
