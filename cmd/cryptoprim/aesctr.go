package main

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/wedkarz02/cryptoprim/aes"
	"github.com/wedkarz02/cryptoprim/aesctr"
	"github.com/wedkarz02/cryptoprim/kdf"
)

var aesctrCmd = &cobra.Command{
	Use:   "aes-ctr",
	Short: "Encrypt or decrypt a file with AES-CTR",
}

var aesctrEncryptCmd = &cobra.Command{
	Use:   "encrypt",
	Short: "Encrypt a file with AES-CTR",
	RunE:  runAESCTR(true),
}

var aesctrDecryptCmd = &cobra.Command{
	Use:   "decrypt",
	Short: "Decrypt a file produced by aes-ctr encrypt",
	RunE:  runAESCTR(false),
}

func init() {
	rootCmd.AddCommand(aesctrCmd)
	aesctrCmd.AddCommand(aesctrEncryptCmd, aesctrDecryptCmd)

	for _, c := range []*cobra.Command{aesctrEncryptCmd, aesctrDecryptCmd} {
		c.Flags().String("in", "", "input file path (default: stdin)")
		c.Flags().String("out", "", "output file path (default: stdout)")
		c.Flags().String("key-hex", "", "raw AES key, hex encoded (16/24/32 bytes)")
		c.Flags().String("passphrase", "", "derive the AES key from this passphrase instead of --key-hex")
		c.Flags().String("salt-hex", "", "salt for passphrase derivation, hex encoded (required with --passphrase on decrypt)")
		c.Flags().String("iv-hex", "", "16-byte CTR IV, hex encoded (encrypt: random if omitted; decrypt: required)")
		c.Flags().Bool("compress", false, "zstd-compress before encrypting / decompress after decrypting")
		viper.BindPFlags(c.Flags())
	}
}

func resolveKey(passphraseFlag, keyHexFlag, saltHexFlag string) (*aes.Key, []byte, error) {
	passphrase := viper.GetString(passphraseFlag)
	keyHex := viper.GetString(keyHexFlag)

	if passphrase != "" && keyHex != "" {
		return nil, nil, errors.New("specify either --passphrase or --key-hex, not both")
	}

	if passphrase != "" {
		saltHex := viper.GetString(saltHexFlag)

		var salt []byte
		var err error

		if saltHex == "" {
			salt, err = kdf.NewSalt(kdf.DefaultSaltSize)
			if err != nil {
				return nil, nil, err
			}
		} else {
			salt, err = hex.DecodeString(saltHex)
			if err != nil {
				return nil, nil, fmt.Errorf("invalid --salt-hex: %w", err)
			}
		}

		raw, err := kdf.DeriveKeyArgon2id([]byte(passphrase), salt, kdf.DefaultArgon2idParams())
		if err != nil {
			return nil, nil, err
		}

		k, err := aes.NewKey(raw)
		return k, salt, err
	}

	if keyHex == "" {
		return nil, nil, errors.New("one of --passphrase or --key-hex is required")
	}

	raw, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --key-hex: %w", err)
	}

	k, err := aes.NewKey(raw)
	return k, nil, err
}

func runAESCTR(encrypting bool) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		log := operationLogger("aes-ctr")

		if !encrypting && viper.GetString("passphrase") != "" && viper.GetString("salt-hex") == "" {
			return errors.New("--salt-hex is required with --passphrase for decrypt")
		}

		key, salt, err := resolveKey("passphrase", "key-hex", "salt-hex")
		if err != nil {
			return err
		}
		defer key.Destroy()

		if salt != nil {
			log.Info("derived key from passphrase", "salt_hex", hex.EncodeToString(salt))
		}

		var iv aesctr.IV
		ivHex := viper.GetString("iv-hex")

		switch {
		case ivHex != "":
			raw, err := hex.DecodeString(ivHex)
			if err != nil {
				return fmt.Errorf("invalid --iv-hex: %w", err)
			}
			if len(raw) != len(iv) {
				return fmt.Errorf("iv must be %d bytes, got %d", len(iv), len(raw))
			}
			copy(iv[:], raw)
		case encrypting:
			if _, err := rand.Read(iv[:]); err != nil {
				return err
			}
		default:
			return errors.New("--iv-hex is required for decrypt")
		}

		in, err := openInput(cmd)
		if err != nil {
			return err
		}
		defer in.Close()

		inBytes, err := io.ReadAll(in)
		if err != nil {
			return err
		}

		compress := viper.GetBool("compress")

		if encrypting && compress {
			inBytes, err = zstdCompress(inBytes)
			if err != nil {
				return err
			}
		}

		outBytes := make([]byte, len(inBytes))
		if err := aesctr.Encrypt(key, iv, outBytes, inBytes); err != nil {
			return err
		}

		if !encrypting && compress {
			outBytes, err = zstdDecompress(outBytes)
			if err != nil {
				return err
			}
		}

		out, err := openOutput(cmd)
		if err != nil {
			return err
		}
		defer out.Close()

		if encrypting {
			fmt.Fprintf(os.Stderr, "iv: %s\n", hex.EncodeToString(iv[:]))
		}

		_, err = out.Write(outBytes)
		if err != nil {
			return err
		}

		log.Info("done", "bytes", len(outBytes))
		return nil
	}
}

func openInput(cmd *cobra.Command) (io.ReadCloser, error) {
	path := viper.GetString("in")
	if path == "" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(path)
}

func openOutput(cmd *cobra.Command) (io.WriteCloser, error) {
	path := viper.GetString("out")
	if path == "" {
		return nopWriteCloser{os.Stdout}, nil
	}
	return os.Create(path)
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func zstdCompress(data []byte) ([]byte, error) {
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func zstdDecompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return dec.DecodeAll(data, nil)
}
