// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/plugorder/plugorder/cmd/plugorder"

func main() {
	cmd.Execute()
}
