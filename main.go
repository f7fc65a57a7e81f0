// SPDX-License-Identifier: MPL-2.0

package main

import cmd "ccmk-cli/cmd/ccmk"

func main() {
	cmd.Execute()
}
