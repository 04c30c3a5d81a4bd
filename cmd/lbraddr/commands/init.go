package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	cfg "github.com/bytom/lbraddr/config"
)

var initShow bool

var initFilesCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the home directory with a default config file",
	RunE:  initFiles,
}

func init() {
	initFilesCmd.Flags().BoolVar(&initShow, "show", false, "Print the config file after initializing")
}

func initFiles(cmd *cobra.Command, args []string) error {
	cfg.EnsureRoot(config.RootDir, config.ChainID)
	log.WithFields(log.Fields{"module": logModule, "config": cfg.ConfigFile(config.RootDir)}).Info("initialized lbraddr")

	if !initShow {
		return nil
	}

	loaded, err := cfg.LoadFile(cfg.ConfigFile(config.RootDir))
	if err != nil {
		return newSystemError(err)
	}

	jww.FEEDBACK.Printf("config file: %s\n", cfg.ConfigFile(config.RootDir))
	jww.FEEDBACK.Printf("chain_id:    %s\n", loaded.ChainID)
	jww.FEEDBACK.Printf("log_level:   %s\n", loaded.LogLevel)
	jww.FEEDBACK.Printf("log_file:    %s\n", loaded.LogFile)
	jww.FEEDBACK.Printf("version:     %s\n", loaded.Version)
	jww.FEEDBACK.Printf("address.hrp: %q\n", loaded.Address.HRP)
	jww.FEEDBACK.Printf("address.default_sub_address: %s\n", loaded.Address.DefaultSubAddress)
	return nil
}
