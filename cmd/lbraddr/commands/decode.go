package commands

import (
	"bufio"
	stdjson "encoding/json"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"

	"github.com/bytom/lbraddr/common"
)

const decodeCacheSize = 1024

var (
	decodeJSON  bool
	decodeCache = common.NewDecodeCache(decodeCacheSize)
)

var decodeCmd = &cobra.Command{
	Use:   "decode [address...]",
	Short: "Decode account addresses into their parts",
	Long: `Decode account addresses into human-readable part, checksum, hex address and
hex sub-address. Without arguments one address per line is read from stdin.`,
	Example: "  lbraddr decode lbr1p7ujcndcl7nudzwt8fglhx6wxn08kgs5tm6mz4usw5p72t",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			lines, err := readLines(os.Stdin)
			if err != nil {
				return newSystemError(err)
			}
			args = lines
		}

		decoded, err := decodeArgs(args)
		for _, d := range decoded {
			if err := printDecoded(d); err != nil {
				return newSystemError(err)
			}
		}
		return err
	},
}

func init() {
	decodeCmd.Flags().BoolVar(&decodeJSON, "json", false, "Print each decoded address as JSON")
}

// decodeArgs decodes every address in order and stops at the first failure,
// returning what was decoded before it.
func decodeArgs(args []string) ([]*common.DecodedAddress, error) {
	var decoded []*common.DecodedAddress
	for _, arg := range args {
		d, err := decodeCache.Decode(arg)
		if err != nil {
			return decoded, newParseError(arg, err)
		}
		decoded = append(decoded, d)
	}
	return decoded, nil
}

func printDecoded(d *common.DecodedAddress) error {
	if decodeJSON {
		rawData, err := stdjson.MarshalIndent(d, "", "  ")
		if err != nil {
			return err
		}

		jww.FEEDBACK.Println(string(rawData))
		return nil
	}

	jww.FEEDBACK.Printf("hrp:         %s\n", d.HRP)
	jww.FEEDBACK.Printf("checksum:    %s\n", d.Checksum)
	jww.FEEDBACK.Printf("address:     %s\n", d.Address)
	jww.FEEDBACK.Printf("sub-address: %s\n", d.SubAddress)
	return nil
}

// readLines returns the non-blank lines of r with surrounding space removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
