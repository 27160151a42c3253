// Command gpapi-compile prints the GP-API request a JSON authorization request
// compiles to.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/cardflow/gpapi/gpapi"
	"github.com/cardflow/gpapi/gpapi/models"
	"github.com/cardflow/gpapi/preview"
)

var (
	flagIn       = flag.String("in", "-", "request JSON file, - for stdin")
	flagEnv      = flag.String("env", ".env", "dotenv file with GPAPI_* settings")
	flagMerchant = flag.String("merchant", "", "merchant id, overrides GPAPI_MERCHANT_ID")
	flagAccount  = flag.String("account", "", "transaction processing account name")
	flagChannel  = flag.String("channel", "", "CP|CNP, overrides GPAPI_CHANNEL")
	flagBaseURL  = flag.String("base-url", "", "print the full HTTP request against this base URL")
)

func main() {
	flag.Parse()

	config := must1(preview.LoadConfig(*flagEnv)).Compiler
	if *flagMerchant != "" {
		config.MerchantID = *flagMerchant
	}
	if *flagAccount != "" {
		config.TransactionProcessingAccountName = *flagAccount
	}
	switch models.Channel(*flagChannel) {
	case "":
	case models.CardPresent, models.CardNotPresent:
		config.Channel = models.Channel(*flagChannel)
	default:
		fail("-channel must be CP or CNP, got %q", *flagChannel)
	}

	in := io.Reader(os.Stdin)
	if *flagIn != "-" {
		f := must1(os.Open(*flagIn))
		defer f.Close()
		in = f
	}

	must(compile(gpapi.NewCompiler(config), in, os.Stdout, *flagBaseURL))
}

// compile reads one request from r and writes the wire request to w, either
// as indented JSON or, with a base URL, as an HTTP request line and body.
func compile(c *gpapi.Compiler, r io.Reader, w io.Writer, baseURL string) error {
	dto := preview.CompileRequest{}
	if err := json.NewDecoder(r).Decode(&dto); err != nil {
		return fmt.Errorf("decoding request: %w", err)
	}

	req, err := dto.ToAuthorizationRequest()
	if err != nil {
		return err
	}

	wire, err := c.Compile(req)
	if err != nil {
		return fmt.Errorf("compiling %s: %w", req.TransactionType, err)
	}

	if baseURL == "" {
		enc, err := json.MarshalIndent(wire, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(enc))
		return err
	}

	httpReq, err := wire.NewHTTPRequest(context.Background(), baseURL)
	if err != nil {
		return err
	}
	body, err := json.MarshalIndent(wire.Body, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s %s\nContent-Type: %s\n\n%s\n",
		httpReq.Method, httpReq.URL, httpReq.Header.Get("Content-Type"), body)
	return err
}

func must(err error) {
	if err != nil {
		fail("%v", err)
	}
}

func must1[T any](v T, err error) T {
	if err != nil {
		fail("%v", err)
	}
	return v
}

func fail(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
