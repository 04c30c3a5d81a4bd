package main

import (
	"github.com/tendermint/tmlibs/cli"

	"github.com/bytom/lbraddr/cmd/lbraddr/commands"
	cfg "github.com/bytom/lbraddr/config"
)

func main() {
	cmd := cli.PrepareBaseCmd(commands.RootCmd, "LBR", cfg.DefaultDataDir())
	cmd.Execute()
}
