package commands

import (
	"fmt"
	"math"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jianyun8023/img2epub/config"
	"github.com/jianyun8023/img2epub/epub"
	"github.com/jianyun8023/img2epub/imagedir"
)

var log = logrus.WithField("component", "cli")

var (
	flagTitle     string
	flagAuthor    string
	flagStoryID   string
	flagDirection string
	flagSubjects  []string
	flagLevel     int
	flagMetadata  string
	flagVerbose   bool
)

func init() {
	rootCmd.Flags().StringVarP(&flagTitle, "title", "t", config.DefaultTitle, "Book title")
	rootCmd.Flags().StringVarP(&flagAuthor, "author", "a", config.DefaultAuthor, "Book author")
	rootCmd.Flags().StringVarP(&flagStoryID, "storyid", "i", "", "Unique identifier (default: random urn:uuid)")
	rootCmd.Flags().StringVarP(&flagDirection, "direction", "d", config.DirectionLTR, "Reading direction: ltr or rtl")
	rootCmd.Flags().StringArrayVarP(&flagSubjects, "subject", "s", []string{}, "Subject tag (repeatable)")
	rootCmd.Flags().IntVarP(&flagLevel, "level", "l", config.DefaultCompressionLevel, "ZIP compression level (0-9)")
	rootCmd.Flags().StringVar(&flagMetadata, "metadata", "", "YAML file with default metadata (title, author, id, direction, subjects, level)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

var rootCmd = &cobra.Command{
	Use:   "img2epub [flags] <image-dir> <output.epub>",
	Short: "Convert a directory of images into a fixed-layout EPUB",
	Long: `img2epub packs the JPEG and PNG images of a directory, in filename order,
into a fixed-layout EPUB 3 comic book. The first image becomes the cover.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagVerbose {
			logrus.SetLevel(logrus.DebugLevel)
		}

		cfg, err := buildConfig(cmd, args)
		if err != nil {
			return err
		}

		pages, err := imagedir.Load(cfg.InputDir)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Found %d pages.\n", len(pages))

		err = epub.Build(cfg, pages, func(p imagedir.PageEntry, total int) {
			percent := int(math.Round(float64(p.Index) / float64(total) * 100))
			fmt.Fprintf(out, "%d%% Processing page %d of %d: %s (%s)\n",
				percent, p.Index+1, total, p.Name, p.Resolution())
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "Complete! Saved EPUB as %s\n", cfg.OutputPath)
		return nil
	},
}

// buildConfig layers defaults, the optional metadata file and the flags
// the user actually passed, in that order.
func buildConfig(cmd *cobra.Command, args []string) (*config.BuildConfig, error) {
	cfg := config.Default()
	cfg.InputDir = args[0]
	cfg.OutputPath = args[1]

	if flagMetadata != "" {
		m, err := config.LoadMetadataFile(flagMetadata)
		if err != nil {
			return nil, err
		}
		cfg.Merge(m)
		log.WithField("file", flagMetadata).Debug("metadata file loaded")
	}

	flags := cmd.Flags()
	if flags.Changed("title") {
		cfg.Title = flagTitle
	}
	if flags.Changed("author") {
		cfg.Author = flagAuthor
	}
	if flags.Changed("storyid") && flagStoryID != "" {
		cfg.BookID = flagStoryID
	}
	if flags.Changed("direction") {
		cfg.Direction = config.NormalizeDirection(flagDirection)
	}
	if flags.Changed("subject") {
		cfg.Subjects = append([]string{}, flagSubjects...)
	}
	if flags.Changed("level") {
		cfg.CompressionLevel = flagLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"title":     cfg.Title,
		"id":        cfg.BookID,
		"direction": cfg.Direction,
		"level":     cfg.CompressionLevel,
	}).Debug("build configuration")
	return cfg, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
