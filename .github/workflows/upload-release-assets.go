package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
)

const uploadUrl = "https://uploads.github.com/repos/gclaussn/go-lcu/releases/%s/assets?name=%s"

// content types by build artifact extension
var contentTypes = map[string]string{
	".gz":     "application/gzip",
	".sha256": "text/plain",
}

func main() {
	log.SetFlags(0)

	flags := flag.NewFlagSet("upload-release-assets", flag.ContinueOnError)
	flags.SetOutput(log.Writer())

	var releaseId string
	flags.StringVar(&releaseId, "release-id", "", "ID of the Github release")

	if err := flags.Parse(os.Args[1:]); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		} else {
			os.Exit(1)
		}
	}

	if releaseId == "" {
		log.Fatal("please provide a release ID")
	}

	githubToken, ok := os.LookupEnv("GITHUB_TOKEN")
	if !ok {
		log.Fatal("please set environment variable GITHUB_TOKEN")
	}

	buildArtifacts, err := os.ReadDir("./build")
	if err != nil {
		log.Fatalf("failed to read build directory: %v", err)
	}

	for _, buildArtifact := range buildArtifacts {
		name := buildArtifact.Name()

		contentType, ok := contentTypes[filepath.Ext(name)]
		if !ok {
			log.Fatalf("file %s has an unsupported extension", name)
		}

		cmd := exec.Command(
			"curl",
			"-L",
			"--fail-with-body",
			"-X", "POST",
			"-H", "Accept: application/vnd.github+json",
			"-H", "Authorization: Bearer "+githubToken,
			"-H", "X-GitHub-Api-Version: 2022-11-28",
			"-H", "Content-Type: "+contentType,
			fmt.Sprintf(uploadUrl, releaseId, name),
			"--data-binary", "@./build/"+name,
		)

		log.Printf("uploading %s", name)

		out, err := cmd.Output()
		if len(out) != 0 {
			log.Println(string(out))
		}
		if err != nil {
			log.Fatalf("failed to upload %s: %v", name, err)
		}
	}
}
