package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/lbraddr/common"
	"github.com/bytom/lbraddr/util"
)

var validateCmd = &cobra.Command{
	Use:     "validate <address>...",
	Short:   "Check that account addresses are valid on the selected network",
	Example: "  lbraddr --chain_id testnet validate tlb1p7ujcndcl7nudzwt8fglhx6wxn08kgs5tm6mz4usugm707",
	Args:    checkArgs(cobra.MinimumNArgs(1)),
	RunE: func(cmd *cobra.Command, args []string) error {
		results := validateArgs(args)
		invalid := 0
		for _, r := range results {
			if r.err != nil {
				invalid++
				jww.FEEDBACK.Printf("%s: invalid: %s\n", r.address, formatter.Format(r.err))
				continue
			}
			jww.FEEDBACK.Printf("%s: valid\n", r.address)
		}

		if invalid > 0 {
			return commandError{s: "invalid addresses found", userError: true, exitCode: util.ErrLocalParse}
		}
		return nil
	},
}

type validateResult struct {
	address string
	err     error
}

func validateArgs(args []string) []validateResult {
	results := make([]validateResult, 0, len(args))
	for _, arg := range args {
		_, err := common.DecodeAddress(arg, netParams)
		if err != nil {
			log.WithFields(log.Fields{"module": logModule, "address": arg, "err": err}).Debug("invalid address")
		}
		results = append(results, validateResult{address: arg, err: err})
	}
	return results
}
