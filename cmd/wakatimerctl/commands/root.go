// Package commands 維運用 CLI：migration、PKCE 與金鑰產生
package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

func Execute() error {
	return NewRoot(os.Stdout).Execute()
}

// NewRoot out 為所有子指令的輸出位置
func NewRoot(out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "wakatimerctl",
		Short:         "Wakatimer operations CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.SetOut(out)
	root.AddCommand(migrateCmd(), pkceCmd(), keygenCmd(), tokenCmd())
	return root
}
