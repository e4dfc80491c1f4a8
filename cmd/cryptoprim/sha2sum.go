package main

import (
	"encoding/hex"
	"fmt"
	"hash"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wedkarz02/cryptoprim/sha2"
)

var sha2sumCmd = &cobra.Command{
	Use:   "sha2sum",
	Short: "Print the SHA-2 digest of a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := operationLogger("sha2sum")

		variant := viper.GetString("variant")

		var h hash.Hash
		switch variant {
		case "224":
			h = sha2.New224()
		case "256", "":
			h = sha2.New256()
		case "384":
			h = sha2.New384()
		case "512":
			h = sha2.New512()
		default:
			return fmt.Errorf("unknown variant %q, want one of 224, 256, 384, 512", variant)
		}

		in, err := openInput(cmd)
		if err != nil {
			return err
		}
		defer in.Close()

		n, err := io.Copy(h, in)
		if err != nil {
			return err
		}

		fmt.Println(hex.EncodeToString(h.Sum(nil)))

		log.Debug("hashed", "bytes", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sha2sumCmd)
	sha2sumCmd.Flags().String("in", "", "input file path (default: stdin)")
	sha2sumCmd.Flags().String("variant", "256", "digest variant: 224, 256, 384 or 512")
	viper.BindPFlags(sha2sumCmd.Flags())
}
