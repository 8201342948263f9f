package main

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/quicwire/go-kex"
	"github.com/quicwire/go-kex/kex_c255"
	"github.com/quicwire/go-kex/kex_p256"
	"github.com/spf13/cobra"
)

var log = kex.Logger

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&methodTag, "method", kex.TagP256.String(), "key exchange method (P256 or C255)")
	rootCmd.AddCommand(keygenCmd)
	rootCmd.AddCommand(publicCmd)
	rootCmd.AddCommand(sharedCmd)
}

var methodTag string

func scheme() (kex.Scheme, error) {
	switch methodTag {
	case kex.TagP256.String():
		return kex_p256.New(), nil
	case kex.TagC255.String():
		return kex_c255.New(), nil
	}
	return nil, fmt.Errorf("unknown key exchange method %q", methodTag)
}

var rootCmd = &cobra.Command{
	Use:   "kexutil",
	Short: "Key exchange testing and diagnostics",
}

var keygenCmd = &cobra.Command{
	Use:   "keygen",
	Short: "Generate an ephemeral key pair, hex encoded",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scheme()
		if err != nil {
			return err
		}
		serialized, err := s.NewPrivateKey(rand.Reader)
		if err != nil {
			return err
		}
		cmd.Println(hex.EncodeToString(serialized))
		return nil
	},
}

var publicCmd = &cobra.Command{
	Use:   "public <key-pair>",
	Short: "Print the public value of a serialized key pair",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scheme()
		if err != nil {
			return err
		}
		serialized, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}
		kx, err := s.New(serialized)
		if err != nil {
			return err
		}
		cmd.Println(hex.EncodeToString(kx.PublicValue()))
		return nil
	},
}

var sharedCmd = &cobra.Command{
	Use:   "shared <key-pair> <peer-public-value>",
	Short: "Derive the shared secret for a key pair and a peer's public value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := scheme()
		if err != nil {
			return err
		}
		serialized, err := hex.DecodeString(args[0])
		if err != nil {
			return err
		}
		peerPublicValue, err := hex.DecodeString(args[1])
		if err != nil {
			return err
		}
		kx, err := s.New(serialized)
		if err != nil {
			return err
		}
		secret, err := kx.ComputeSharedSecret(peerPublicValue)
		if err != nil {
			return err
		}
		cmd.Println(hex.EncodeToString(secret))
		return nil
	},
}
