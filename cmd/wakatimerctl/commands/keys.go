package commands

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/spf13/cobra"

	"wakatimer/internal/oauth"
	"wakatimer/internal/session"
)

// generateKey 測試可覆寫
var generateKey = securecookie.GenerateRandomKey

func pkceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pkce",
		Short: "Print a fresh PKCE verifier/challenge pair as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(oauth.NewPKCE())
		},
	}
}

func keygenCmd() *cobra.Command {
	var size int
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a random AUTH_SECRET",
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 32 {
				return errors.New("--bytes must be at least 32")
			}
			key := generateKey(size)
			if key == nil {
				return errors.New("random source unavailable")
			}
			fmt.Fprintln(cmd.OutOrStdout(), hex.EncodeToString(key))
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "bytes", 64, "key length in bytes")
	return cmd
}

// tokenCmd 顯示後端 JWT 的到期時間，供排查 session 過期
func tokenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "token-expiry <jwt>",
		Short: "Print the exp claim of a backend token",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			exp, ok := session.TokenExpiry(args[0])
			if !ok {
				return errors.New("token has no readable exp claim")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (in %s)\n", exp.UTC().Format(time.RFC3339), time.Until(exp).Round(time.Second))
			return nil
		},
	}
}
