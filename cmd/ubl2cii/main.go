// Command ubl2cii converts UBL 2.1 invoices and credit notes to CII D16B.
package main

import "os"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
