// Command respbctl is the operator-facing CLI for inspecting and emitting
// RESPB frames, and for driving the demo server.
package main

import "github.com/maxpert/respb-protocol/cmd/respbctl/cmd"

func main() {
	cmd.Execute()
}
