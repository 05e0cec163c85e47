// Command snap is a local, single-machine version-control system.
package main

import "github.com/localvcs/snap/cmd"

func main() {
	cmd.Execute()
}
