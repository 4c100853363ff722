// Command client is a small smoke-test CLI for the frame storage API. It
// registers, logs in and drives the frame batch operations against a running
// server, printing every response as JSON.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dpanagushin/framestore/internal/adapter"
	"github.com/dpanagushin/framestore/internal/logger"
	"github.com/dpanagushin/framestore/models"
)

func main() {
	address := flag.String("a", "http://localhost:8080", "server base URL")
	email := flag.String("email", "", "account email")
	password := flag.String("password", "", "account password")
	flag.Parse()

	log := logger.NewLogger("framestore-client")

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}

	client, err := adapter.NewHTTPAPIClient(adapter.HTTPClientConfig{BaseURL: *address}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	ctx := context.Background()
	credentials := models.User{Email: *email, Password: *password}

	command := flag.Arg(0)
	switch command {
	case "register":
		registered, err := client.Register(ctx, credentials)
		if err != nil {
			log.Fatal().Err(err).Msg("registration failed")
		}
		printJSON(registered)

	case "login":
		login, err := client.Login(ctx, credentials)
		if err != nil {
			log.Fatal().Err(err).Msg("login failed")
		}
		printJSON(login)

	case "upload":
		mustLogin(ctx, client, credentials, log)

		files, err := readFiles(flag.Args()[1:])
		if err != nil {
			log.Fatal().Err(err).Msg("error reading files")
		}

		batch, err := client.UploadFrames(ctx, files)
		if err != nil {
			log.Fatal().Err(err).Msg("upload failed")
		}
		printJSON(batch)

	case "get":
		requireCode(flag.Args())
		mustLogin(ctx, client, credentials, log)

		batch, err := client.GetFrames(ctx, flag.Arg(1))
		if err != nil {
			log.Fatal().Err(err).Msg("retrieval failed")
		}
		printJSON(batch)

	case "delete":
		requireCode(flag.Args())
		mustLogin(ctx, client, credentials, log)

		if err := client.DeleteFrames(ctx, flag.Arg(1)); err != nil {
			log.Fatal().Err(err).Msg("deletion failed")
		}
		printJSON(models.MessageResponse{Message: fmt.Sprintf("batch %s deleted", flag.Arg(1))})

	default:
		usage()
		os.Exit(2)
	}
}

func mustLogin(ctx context.Context, client adapter.APIClient, credentials models.User, log *logger.Logger) {
	if _, err := client.Login(ctx, credentials); err != nil {
		log.Fatal().Err(err).Msg("login failed")
	}
}

func readFiles(paths []string) ([]models.FrameUpload, error) {
	var files []models.FrameUpload
	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		files = append(files, models.FrameUpload{Name: filepath.Base(path), Content: content})
	}

	return files, nil
}

func requireCode(args []string) {
	if len(args) < 2 {
		usage()
		os.Exit(2)
	}
}

func printJSON(data any) {
	encoded, _ := json.MarshalIndent(data, "", "  ")
	fmt.Println(string(encoded))
}

func usage() {
	fmt.Fprintf(os.Stderr, `usage: client [-a address] -email EMAIL -password PASSWORD COMMAND

commands:
  register              create an account
  login                 obtain a fresh auth token
  upload FILE.jpg ...   upload a batch of images
  get CODE              list a batch by request code
  delete CODE           delete a batch by request code
`)
}
