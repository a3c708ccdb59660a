// Command seed applies the static vendor and account roster. Safe to rerun;
// everything is upserted.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/tangbing-xm/tweet-feeds/internal/config"
	"github.com/tangbing-xm/tweet-feeds/internal/database"
	"github.com/tangbing-xm/tweet-feeds/internal/domain"
	"github.com/tangbing-xm/tweet-feeds/internal/service"
	"github.com/tangbing-xm/tweet-feeds/internal/storage/postgres"
)

var vendors = []domain.Vendor{
	// Foundation models
	{Slug: "openai", NameEn: "OpenAI", NameZh: "OpenAI", SortOrder: 10},
	{Slug: "anthropic", NameEn: "Anthropic", NameZh: "Anthropic", SortOrder: 20},
	{Slug: "google", NameEn: "Google DeepMind", NameZh: "谷歌 DeepMind", SortOrder: 30},
	{Slug: "meta", NameEn: "Meta AI", NameZh: "Meta AI", SortOrder: 40},
	{Slug: "mistral", NameEn: "Mistral AI", NameZh: "Mistral AI", SortOrder: 50},
	{Slug: "deepseek", NameEn: "DeepSeek", NameZh: "深度求索", SortOrder: 60},
	{Slug: "qwen", NameEn: "Qwen", NameZh: "通义千问", SortOrder: 70},
	{Slug: "xai", NameEn: "xAI", NameZh: "xAI", SortOrder: 80},

	// Applications and search
	{Slug: "perplexity", NameEn: "Perplexity", NameZh: "Perplexity", SortOrder: 100},

	// Image and video generation
	{Slug: "blackforest", NameEn: "Black Forest Labs", NameZh: "Black Forest Labs", SortOrder: 110},
	{Slug: "stability", NameEn: "Stability AI", NameZh: "Stability AI", SortOrder: 120},
	{Slug: "midjourney", NameEn: "Midjourney", NameZh: "Midjourney", SortOrder: 130},
	{Slug: "runway", NameEn: "Runway", NameZh: "Runway", SortOrder: 140},
	{Slug: "luma", NameEn: "Luma AI", NameZh: "Luma AI", SortOrder: 150},
	{Slug: "pika", NameEn: "Pika", NameZh: "Pika", SortOrder: 160},
	{Slug: "kimi", NameEn: "Kimi", NameZh: "Kimi 月之暗面", SortOrder: 170},

	// Infrastructure and tools
	{Slug: "huggingface", NameEn: "Hugging Face", NameZh: "Hugging Face", SortOrder: 200},
	{Slug: "replicate", NameEn: "Replicate", NameZh: "Replicate", SortOrder: 210},
	{Slug: "together", NameEn: "Together AI", NameZh: "Together AI", SortOrder: 220},
	{Slug: "vercel", NameEn: "Vercel", NameZh: "Vercel", SortOrder: 230},

	// Catch-all
	{Slug: "other", NameEn: "Other", NameZh: "其他", SortOrder: 999},
}

var accounts = []service.RosterAccount{
	{VendorSlug: "openai", Handle: "OpenAI", DisplayName: "OpenAI"},
	{VendorSlug: "anthropic", Handle: "AnthropicAI", DisplayName: "Anthropic"},
	{VendorSlug: "google", Handle: "GoogleDeepMind", DisplayName: "Google DeepMind"},
	{VendorSlug: "meta", Handle: "MetaAI", DisplayName: "Meta AI"},
	{VendorSlug: "mistral", Handle: "MistralAI", DisplayName: "Mistral AI"},
	{VendorSlug: "deepseek", Handle: "deepseek_ai", DisplayName: "DeepSeek"},
	{VendorSlug: "qwen", Handle: "Alibaba_Qwen", DisplayName: "Alibaba Qwen"},
	{VendorSlug: "xai", Handle: "xAI", DisplayName: "xAI (Grok)"},
	{VendorSlug: "perplexity", Handle: "perplexity_ai", DisplayName: "Perplexity"},
	{VendorSlug: "blackforest", Handle: "blackforestlabs", DisplayName: "Black Forest Labs (Flux)"},
	{VendorSlug: "stability", Handle: "StabilityAI", DisplayName: "Stability AI"},
	{VendorSlug: "midjourney", Handle: "midjourney", DisplayName: "Midjourney"},
	{VendorSlug: "runway", Handle: "runwayml", DisplayName: "Runway"},
	{VendorSlug: "luma", Handle: "LumaAI", DisplayName: "Luma AI"},
	{VendorSlug: "pika", Handle: "pika_labs", DisplayName: "Pika"},
	{VendorSlug: "kimi", Handle: "Kimi_Moonshot", DisplayName: "Moonshot AI (Kimi)"},
	{VendorSlug: "huggingface", Handle: "huggingface", DisplayName: "Hugging Face"},
	{VendorSlug: "replicate", Handle: "replicate", DisplayName: "Replicate"},
	{VendorSlug: "together", Handle: "togethercompute", DisplayName: "Together AI"},
	{VendorSlug: "vercel", Handle: "vercel", DisplayName: "Vercel (AI SDK)"},
}

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	if err := database.RunMigrations(cfg.Database.URL()); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	seeder := service.NewSeedService(
		postgres.NewVendorStore(db),
		postgres.NewAccountStore(db),
		postgres.NewTransactionManager(db),
		logger,
	)

	if err := seeder.Seed(context.Background(), service.Roster{
		Vendors:  vendors,
		Accounts: accounts,
	}); err != nil {
		logger.Error("seed failed", "error", err)
		os.Exit(1)
	}
}
