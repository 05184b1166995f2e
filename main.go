// SPDX-License-Identifier: MPL-2.0

package main

import cmd "datalab-cli/cmd/lab"

func main() {
	cmd.Execute()
}
