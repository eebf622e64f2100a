package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"primer/pkg/domain"
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check the book for structural problems",
	Long: `Runs the full rule set: table-of-contents completeness, heading structure,
code example syntax, link well-formedness, and render determinism.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runVerify(cmd); err != nil {
			fmt.Printf("Verification failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command) error {
	book, err := openBook(cmd)
	if err != nil {
		return fmt.Errorf("failed to open book: %w", err)
	}

	findings, err := book.Verify()
	if err != nil {
		return err
	}

	if len(findings) == 0 {
		fmt.Println("Book is valid! ✅")
		return nil
	}

	for _, f := range findings {
		fmt.Println(f)
	}

	if domain.HasErrors(findings) {
		return fmt.Errorf("%d finding(s), with errors", len(findings))
	}
	fmt.Printf("%d warning(s), no errors\n", len(findings))
	return nil
}
