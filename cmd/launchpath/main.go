package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/launchpath/launchpath/internal/profile"
	"github.com/launchpath/launchpath/server/feed"
	"github.com/launchpath/launchpath/server/recommend"
	"github.com/launchpath/launchpath/store"
)

const version = "0.3.1"

var rootCmd = &cobra.Command{
	Use:   "launchpath",
	Short: "Recommendation toolbox for the LaunchPath knowledge hub",
	Long: `Loads the content catalogue (theories, blog posts, projects) from a data
directory and answers recommendation queries against it.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().String("mode", "dev", `mode of the binary, can be "prod" or "dev"`)
	rootCmd.PersistentFlags().String("data", "", "directory holding the catalogue files")
	_ = viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	_ = viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))
	viper.SetDefault("related-limit", 4)
	viper.SetDefault("recommend-limit", 6)
	viper.SetEnvPrefix("launchpath")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(newRelatedCmd(), newRecommendCmd(), newCrossLinksCmd(), newListCmd(), newFeedCmd())
}

func loadProfile() (*profile.Profile, error) {
	p := &profile.Profile{
		Mode:           viper.GetString("mode"),
		Data:           viper.GetString("data"),
		Version:        version,
		RelatedLimit:   viper.GetInt("related-limit"),
		RecommendLimit: viper.GetInt("recommend-limit"),
	}
	p.FromEnv()
	if err := p.Validate(); err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if p.IsDev() {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return p, nil
}

// setupEngine loads the catalogue from the data directory and installs the
// process-wide engine.
func setupEngine() (*recommend.Engine, error) {
	p, err := loadProfile()
	if err != nil {
		return nil, err
	}
	if p.Data == "" {
		return nil, errors.New("a data directory is required, set --data or LAUNCHPATH_DATA")
	}
	catalogue, err := store.LoadCatalogue(p.Data)
	if err != nil {
		return nil, err
	}
	engine := recommend.InitializeEngine(catalogue.Theories(), catalogue.BlogPosts(), catalogue.Projects())
	return engine, nil
}

func resolveTheory(engine *recommend.Engine, id string) (*store.Theory, error) {
	theory := engine.Catalogue().GetTheory(id)
	if theory == nil {
		return nil, errors.Errorf("theory %q not found in catalogue", id)
	}
	return theory, nil
}

func progressFromFlags(read []string) *store.UserProgress {
	if len(read) == 0 {
		return nil
	}
	return &store.UserProgress{ReadTheories: read}
}

func newRelatedCmd() *cobra.Command {
	var (
		limit int
		read  []string
	)
	cmd := &cobra.Command{
		Use:   "related <theory-id>",
		Short: "List the theories most relevant to one theory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := setupEngine()
			if err != nil {
				return err
			}
			source, err := resolveTheory(engine, args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("limit") {
				limit = viper.GetInt("related-limit")
			}
			related, err := engine.RelatedTheories(source, progressFromFlags(read), limit)
			if err != nil {
				return err
			}
			for _, theory := range related {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-24s %s\n", theory.ID, theory.Category, theory.Title)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")
	cmd.Flags().StringSliceVar(&read, "read", nil, "theory ids the user has already read")
	return cmd
}

func newRecommendCmd() *cobra.Command {
	var (
		categories []string
		limit      int
		read       []string
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Mixed recommendations for a set of categories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := setupEngine()
			if err != nil {
				return err
			}
			wanted := make([]store.Category, 0, len(categories))
			for _, category := range categories {
				wanted = append(wanted, store.Category(category))
			}
			if !cmd.Flags().Changed("limit") {
				limit = viper.GetInt("recommend-limit")
			}
			items, err := engine.ContentRecommendations(wanted, progressFromFlags(read), limit)
			if err != nil {
				return err
			}
			for _, item := range items {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-44s %s\n", item.Kind, item.ContentTitle(), item.ContentURL())
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&categories, "categories", nil, "theory categories to recommend for")
	cmd.Flags().IntVar(&limit, "limit", 0, "maximum number of results")
	cmd.Flags().StringSliceVar(&read, "read", nil, "theory ids the user has already read")
	_ = cmd.MarkFlagRequired("categories")
	return cmd
}

func newCrossLinksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crosslinks <theory-id>",
		Short: "Print the see-also links of a theory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := setupEngine()
			if err != nil {
				return err
			}
			theory, err := resolveTheory(engine, args[0])
			if err != nil {
				return err
			}
			links, err := engine.CrossLinks(theory)
			if err != nil {
				return err
			}
			for _, link := range links {
				fmt.Fprintf(cmd.OutOrStdout(), "%-10s %-44s %s\n", link.Kind, link.Title, link.URL)
			}
			return nil
		},
	}
	return cmd
}

func newListCmd() *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalogue theories, optionally filtered",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := setupEngine()
			if err != nil {
				return err
			}
			theories, err := engine.Catalogue().ListTheories(filter)
			if err != nil {
				return err
			}
			for _, theory := range theories {
				fmt.Fprintf(cmd.OutOrStdout(), "%-28s %-24s %s\n", theory.ID, theory.Category, theory.Title)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&filter, "filter", "", `CEL filter, e.g. 'category == "cognitive-biases" && "pricing" in tags'`)
	return cmd
}

func newFeedCmd() *cobra.Command {
	var (
		out     string
		siteURL string
	)
	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Write the blog catalogue as an RSS feed",
		RunE: func(cmd *cobra.Command, _ []string) error {
			engine, err := setupEngine()
			if err != nil {
				return err
			}
			rss, err := feed.BlogFeed(engine.Catalogue().BlogPosts(), feed.Options{
				Title:       "LaunchPath Blog",
				SiteURL:     siteURL,
				Description: "Growth psychology for early-stage founders",
			})
			if err != nil {
				return err
			}
			if out == "" {
				fmt.Fprintln(cmd.OutOrStdout(), rss)
				return nil
			}
			return errors.Wrapf(os.WriteFile(out, []byte(rss), 0o644), "write %s", out)
		},
	}
	cmd.Flags().StringVar(&out, "out", "", "file to write the feed to, defaults to stdout")
	cmd.Flags().StringVar(&siteURL, "site-url", "https://launchpath.app", "public base URL of the site")
	return cmd
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
