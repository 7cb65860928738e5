// bffd CLI - backend-for-frontend dispatch and proxy server
package main

import (
	"github.com/bffd/bffd/pkg/cli"
)

func main() {
	cli.Execute()
}
