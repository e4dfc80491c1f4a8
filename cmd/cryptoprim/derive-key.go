package main

import (
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wedkarz02/cryptoprim/kdf"
)

var deriveKeyCmd = &cobra.Command{
	Use:   "derive-key",
	Short: "Derive an AES key from a passphrase",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := operationLogger("derive-key")

		passphrase := viper.GetString("passphrase")
		if passphrase == "" {
			return fmt.Errorf("--passphrase is required")
		}

		keyLen := viper.GetInt("key-len")

		saltHex := viper.GetString("salt-hex")
		var salt []byte
		var err error
		if saltHex == "" {
			salt, err = kdf.NewSalt(kdf.DefaultSaltSize)
			if err != nil {
				return err
			}
		} else {
			salt, err = hex.DecodeString(saltHex)
			if err != nil {
				return fmt.Errorf("invalid --salt-hex: %w", err)
			}
		}

		var key []byte
		if viper.GetBool("pbkdf2") {
			params := kdf.DefaultPBKDF2Params()
			params.KeyLen = keyLen
			key, err = kdf.DeriveKeyPBKDF2([]byte(passphrase), salt, params)
		} else {
			params := kdf.DefaultArgon2idParams()
			params.KeyLen = uint32(keyLen)
			key, err = kdf.DeriveKeyArgon2id([]byte(passphrase), salt, params)
		}
		if err != nil {
			return err
		}

		fmt.Printf("salt: %s\n", hex.EncodeToString(salt))
		fmt.Printf("key:  %s\n", hex.EncodeToString(key))

		log.Debug("derived key", "key_len", len(key))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(deriveKeyCmd)
	deriveKeyCmd.Flags().String("passphrase", "", "passphrase to derive the key from")
	deriveKeyCmd.Flags().String("salt-hex", "", "salt, hex encoded (random if omitted)")
	deriveKeyCmd.Flags().Int("key-len", 32, "derived key length in bytes (16, 24 or 32)")
	deriveKeyCmd.Flags().Bool("pbkdf2", false, "use PBKDF2 instead of Argon2id")
	viper.BindPFlags(deriveKeyCmd.Flags())
}
