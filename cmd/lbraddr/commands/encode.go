package commands

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/lbraddr/common"
)

var encodeHRP string

var encodeCmd = &cobra.Command{
	Use:   "encode <address> [sub-address]",
	Short: "Encode a hex address and sub-address into an account address",
	Long: `Encode a 32 character hex address and a 16 character hex sub-address into
a bech32 account address. The sub-address defaults to address.default_sub_address
and the human-readable part to the one of the selected network.`,
	Example: "  lbraddr encode f72589b71ff4f8d139674a3f7369c69b cf64428bdeb62af2",
	Args:    checkArgs(cobra.RangeArgs(1, 2)),
	RunE: func(cmd *cobra.Command, args []string) error {
		addr, err := encodeArgs(args)
		if err != nil {
			return err
		}

		jww.FEEDBACK.Println(addr)
		return nil
	},
}

func init() {
	encodeCmd.Flags().StringVar(&encodeHRP, "hrp", "", "Human-readable part to encode with, overriding the network and address.hrp")
}

func encodeArgs(args []string) (string, error) {
	subAddress := config.Address.DefaultSubAddress
	if len(args) > 1 {
		subAddress = args[1]
	}

	hrp := encodeHRP
	if hrp == "" {
		hrp = config.HRP(netParams)
	}

	addr, err := common.Encode(hrp, args[0], subAddress)
	if err != nil {
		return "", newParseError(args[0], err)
	}

	log.WithFields(log.Fields{"module": logModule, "hrp": hrp, "address": addr}).Debug("address encoded")
	return addr, nil
}
