// Package cmd — compose command.
// This is the main command that orchestrates the pipeline:
// read/fetch → extract → segment → render → preview/save/post.
//
// It handles flag validation, renderer selection, and poster selection
// (simulate unless --post is given and credentials are complete).
package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"

	"github.com/mudler/xlog"
	"github.com/spf13/cobra"

	"github.com/example/tweetpipe/core"
	"github.com/example/tweetpipe/core/extract"
	"github.com/example/tweetpipe/core/fetch"
	"github.com/example/tweetpipe/core/output"
	"github.com/example/tweetpipe/core/post"
	"github.com/example/tweetpipe/core/render"
	"github.com/example/tweetpipe/core/thread"
)

// Flag variables.
var (
	flagURL      string
	flagJSON     bool
	flagSave     bool
	flagPost     bool
	flagSimulate bool
)

var composeCmd = &cobra.Command{
	Use:   "compose [file]",
	Short: "Compose a tweet thread from a document or URL",
	Long: `Compose extracts text from a document or web page, segments it into a
numbered thread, and prints it to stdout. With --save the rendered
thread is written to the output directory; with --post it is published
as a reply chain (or simulated when credentials are incomplete).

Examples:
  tweetpipe compose notes.txt
  tweetpipe compose paper.pdf --save --output-dir ./threads
  tweetpipe compose --url https://example.com/post --json
  tweetpipe compose notes.txt --post`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompose,
}

func init() {
	rootCmd.AddCommand(composeCmd)

	composeCmd.Flags().StringVar(&flagURL, "url", "", "Compose from a web page instead of a file")
	composeCmd.Flags().BoolVar(&flagJSON, "json", false, "Render the thread as JSON instead of plain text")
	composeCmd.Flags().BoolVar(&flagSave, "save", false, "Write the rendered thread to the output directory")
	composeCmd.Flags().BoolVar(&flagPost, "post", false, "Post the thread to the configured account")
	composeCmd.Flags().BoolVar(&flagSimulate, "simulate", false, "Log the thread that would be posted, without posting")
}

func runCompose(cmd *cobra.Command, args []string) error {
	if err := validateComposeFlags(args); err != nil {
		return err
	}

	source, text, err := loadSource(cmd.Context(), extract.New(), fetch.New(), args)
	if err != nil {
		return err
	}

	tweets, err := thread.Split(text, activeCfg.MaxTweetLen)
	if err != nil {
		return err
	}
	if len(tweets) == 0 {
		fmt.Fprintln(os.Stdout, "No content found to compose.")
		return nil
	}

	t := core.Thread{
		Source: source,
		MaxLen: activeCfg.MaxTweetLen,
		Count:  len(tweets),
		Tweets: tweets,
	}

	renderer := selectRenderer()
	data, err := renderer.Render(t)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	if flagSave {
		writer, err := output.New(activeCfg.OutputDir)
		if err != nil {
			return fmt.Errorf("initializing output writer: %w", err)
		}
		path, err := writer.WriteThread(source, data, renderer.Extension())
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "✓ Written: %s\n", path)
	} else {
		os.Stdout.Write(data)
	}

	if flagPost || flagSimulate {
		poster := selectPoster()
		ids, err := poster.PostThread(cmd.Context(), t.Tweets)
		if err != nil {
			return fmt.Errorf("posted %d/%d tweets: %w", len(ids), t.Count, err)
		}
		fmt.Fprintf(os.Stdout, "✓ Posted %d tweets\n", len(ids))
	}
	return nil
}

// loadSource resolves the input to (source label, extracted text).
func loadSource(ctx context.Context, reader core.Reader, fetcher core.Fetcher, args []string) (string, string, error) {
	if flagURL != "" {
		result, err := fetcher.Fetch(ctx, flagURL)
		if err != nil {
			return "", "", fmt.Errorf("fetch: %w", err)
		}
		text, err := extract.ExtractHTML(result.HTML)
		if err != nil {
			return "", "", fmt.Errorf("extract: %w", err)
		}
		return flagURL, text, nil
	}

	path := args[0]
	text, err := reader.ReadFile(path)
	if err != nil {
		return "", "", err
	}
	return path, text, nil
}

// validateComposeFlags checks input and mode flag combinations.
func validateComposeFlags(args []string) error {
	if flagURL == "" && len(args) == 0 {
		return fmt.Errorf("provide a file argument or --url")
	}
	if flagURL != "" && len(args) > 0 {
		return fmt.Errorf("--url and a file argument are mutually exclusive")
	}
	if flagPost && flagSimulate {
		return fmt.Errorf("--post and --simulate are mutually exclusive")
	}
	if flagURL != "" {
		parsed, err := url.Parse(flagURL)
		if err != nil || parsed.Scheme == "" || parsed.Host == "" {
			return fmt.Errorf("invalid URL: %s (must include scheme, e.g. https://example.com)", flagURL)
		}
	}
	return nil
}

// selectRenderer creates the Renderer for the chosen output format.
func selectRenderer() core.Renderer {
	if flagJSON {
		return render.NewJSONRenderer()
	}
	return render.NewTextRenderer()
}

// selectPoster returns the real client only when --post is given and
// the configured credentials are complete; otherwise the simulator.
func selectPoster() core.Poster {
	if !flagPost {
		return post.NewSimulator()
	}
	creds := post.Credentials{
		APIKey:            activeCfg.Twitter.APIKey,
		APISecretKey:      activeCfg.Twitter.APISecretKey,
		AccessToken:       activeCfg.Twitter.AccessToken,
		AccessTokenSecret: activeCfg.Twitter.AccessTokenSecret,
	}
	client, err := post.NewTwitterClient(creds, activeCfg.Twitter.BaseURL)
	if err != nil {
		xlog.Warn("Incomplete credentials; simulating instead", "error", err)
		return post.NewSimulator()
	}
	return client
}
