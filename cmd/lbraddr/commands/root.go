package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	cmn "github.com/tendermint/tmlibs/common"

	cfg "github.com/bytom/lbraddr/config"
	"github.com/bytom/lbraddr/consensus"
	lbrlog "github.com/bytom/lbraddr/log"
	"github.com/bytom/lbraddr/version"
)

const logModule = "cmd"

var (
	config    = cfg.DefaultConfig()
	netParams = &consensus.MainNetParams
)

// lbraddr usage template
var usageTemplate = `Usage:{{if .Runnable}}
  {{.UseLine}}{{end}}{{if .HasAvailableSubCommands}}
  {{.CommandPath}} [command]{{end}}{{if gt (len .Aliases) 0}}

Aliases:
  {{.NameAndAliases}}{{end}}{{if .HasExample}}

Examples:
{{.Example}}{{end}}{{if .HasAvailableSubCommands}}

Available Commands:{{range .Commands}}{{if .IsAvailableCommand}}
  {{rpad .Name .NamePadding }} {{.Short}}{{end}}{{end}}{{end}}{{if .HasAvailableLocalFlags}}

Flags:
{{.LocalFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableInheritedFlags}}

Global Flags:
{{.InheritedFlags.FlagUsages | trimTrailingWhitespaces}}{{end}}{{if .HasAvailableSubCommands}}

Use "{{.CommandPath}} [command] --help" for more information about a command.{{end}}
`

// RootCmd is lbraddr's root command.
// Every other command attached to RootCmd is a child command to it.
var RootCmd = &cobra.Command{
	Use:   "lbraddr",
	Short: "Lbraddr encodes, decodes and validates LIP-5 account addresses",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := viper.Unmarshal(config); err != nil {
			return newSystemError(err)
		}
		config.SetRoot(cfg.ExpandRoot(config.RootDir))

		lbrlog.SetLevel(config.LogLevel)
		// file logging starts once init has created the home directory
		if config.LogFile != "" && cmn.FileExists(config.RootDir) {
			if err := lbrlog.InitLogFile(config); err != nil {
				return newSystemError(err)
			}
		}

		if config.Version != "" {
			compatible, err := version.CompatibleWith(config.Version)
			if err != nil {
				return newSystemErrorF("config version %s: %v", config.Version, err)
			}
			if !compatible {
				return newSystemErrorF("config written by lbraddr v%s can not be read by v%s", config.Version, version.Version)
			}
		}

		params, err := config.NetParams()
		if err != nil {
			return newUserError(err)
		}
		netParams = params

		log.WithFields(log.Fields{"module": logModule, "home": config.RootDir, "network": netParams.Name}).Debug("config loaded")
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 1 {
			cmd.SetUsageTemplate(usageTemplate)
			cmd.Usage()
		}
	},
}

func init() {
	RootCmd.PersistentFlags().String("chain_id", config.ChainID, "Select network type (mainnet, testnet or solonet)")
	RootCmd.PersistentFlags().String("log_level", config.LogLevel, "Select log level(debug, info, warn, error or fatal")
	RootCmd.PersistentFlags().String("log_file", config.LogFile, "Log output file")

	RootCmd.SetFlagErrorFunc(flagError)

	RootCmd.AddCommand(encodeCmd)
	RootCmd.AddCommand(decodeCmd)
	RootCmd.AddCommand(validateCmd)
	RootCmd.AddCommand(initFilesCmd)
	RootCmd.AddCommand(versionCmd)
}
