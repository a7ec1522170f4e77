package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/EspressoSystems/key-set/bundle"
	"github.com/EspressoSystems/key-set/capkeys"
	"github.com/EspressoSystems/key-set/cidutil"
	"github.com/EspressoSystems/key-set/keyset"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 && len(args) != 5 {
		printUsage(errOut)
		return 2
	}

	raw, err := os.ReadFile(args[0])
	if err != nil {
		fmt.Fprintf(errOut, "read: %v\n", err)
		return 1
	}

	vks, err := bundle.ReadVerifierKeySet[keyset.OrderByInputs](bytes.NewReader(raw))
	if err != nil {
		fmt.Fprintf(errOut, "decode: %v\n", err)
		return 1
	}

	if len(args) == 5 {
		return bestFit(vks, args[1:], out, errOut)
	}

	fmt.Fprintf(out, "mint: (%d, %d)\n", vks.Mint.NumInputs(), vks.Mint.NumOutputs())
	printSet(out, "xfr", vks.Xfr)
	printSet(out, "freeze", vks.Freeze)

	digest := vks.Commit()
	fmt.Fprintf(out, "commitment: %s\n", digest)
	id, err := cidutil.CIDForCommitment(digest)
	if err != nil {
		fmt.Fprintf(errOut, "commitment cid: %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "commitment cid: %s\n", id)
	fmt.Fprintf(out, "bundle cid: %s\n", cidutil.CIDv1RawSHA256(raw))
	return 0
}

func bestFit(vks *bundle.VerifierKeySet[keyset.OrderByInputs], args []string, out io.Writer, errOut io.Writer) int {
	if args[0] != "best-fit" {
		printUsage(errOut)
		return 2
	}
	var set *keyset.KeySet[*capkeys.TransactionVerifyingKey, keyset.OrderByInputs]
	switch args[1] {
	case "xfr":
		set = vks.Xfr
	case "freeze":
		set = vks.Freeze
	default:
		printUsage(errOut)
		return 2
	}
	numInputs, err := strconv.Atoi(args[2])
	if err != nil {
		fmt.Fprintf(errOut, "inputs: %v\n", err)
		return 2
	}
	numOutputs, err := strconv.Atoi(args[3])
	if err != nil {
		fmt.Fprintf(errOut, "outputs: %v\n", err)
		return 2
	}

	in, outSize, _, err := set.BestFitKey(numInputs, numOutputs)
	if err != nil {
		fmt.Fprintf(errOut, "%v\n", err)
		return 1
	}
	fmt.Fprintf(out, "(%d, %d)\n", in, outSize)
	return 0
}

func printSet(out io.Writer, name string, set *keyset.KeySet[*capkeys.TransactionVerifyingKey, keyset.OrderByInputs]) {
	fmt.Fprintf(out, "%s:", name)
	for k := range set.Iter() {
		fmt.Fprintf(out, " (%d, %d)", k.NumInputs(), k.NumOutputs())
	}
	maxIn, maxOut := set.MaxSize()
	fmt.Fprintf(out, " max (%d, %d)\n", maxIn, maxOut)
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "usage: keyset-inspect <verifier-bundle>")
	fmt.Fprintln(w, "       keyset-inspect <verifier-bundle> best-fit <xfr|freeze> <inputs> <outputs>")
}
