package main

import (
	"log"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"
	"github.com/xo/dburl"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"upsetTipBot/config"
	"upsetTipBot/models"
	"upsetTipBot/scheduler"
	"upsetTipBot/services"
	"upsetTipBot/services/extService"
)

var db *gorm.DB

func init() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	u, err := dburl.Parse(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Error parsing TIPPING_DB_URL: %v", err)
	}

	var dialector gorm.Dialector
	switch u.Driver {
	case "mysql":
		dialector = mysql.Open(u.DSN + "?charset=utf8mb4&parseTime=True&loc=Local")
	case "sqlite3":
		dialector = sqlite.Open(u.DSN)
	default:
		log.Fatalf("Unsupported database driver %q in TIPPING_DB_URL", u.Driver)
	}

	db, err = gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(&models.Guild{}, &models.Member{}, &models.StorageRecord{}, &models.ErrorLog{}, &models.Migration{})
	if err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	err = services.RunTotalsRebuildMigration(db)
	if err != nil {
		log.Fatalf("Error running totals rebuild migration: %v", err)
	}

	extService.Configure(cfg.NRLFeedURL)
	services.Configure(cfg.AdminSecret)
}

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}

	dg, err := discordgo.New("Bot " + cfg.DiscordBotToken)
	if err != nil {
		log.Fatalf("Error creating Discord session: %v", err)
	}

	dg.AddHandler(interactionCreate)
	dg.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		err := s.UpdateGameStatus(0, "Chasing Upsets!")
		if err != nil {
			return
		}
	})

	dg.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	err = dg.Open()
	if err != nil {
		log.Fatalf("Error opening Discord session: %v", err)
	}
	defer func(dg *discordgo.Session) {
		err := dg.Close()
		if err != nil {

		}
	}(dg)

	scheduler.SetupCron(dg, db)

	err = services.RegisterCommands(dg)
	if err != nil {
		log.Fatalf("Error registering commands: %v", err)
	}

	log.Println("Bot is running. Press CTRL+C to exit.")
	select {}
}

func interactionCreate(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		services.HandleSlashCommand(s, i, db)
	case discordgo.InteractionMessageComponent:
		services.HandleComponentInteraction(s, i, db)
	case discordgo.InteractionModalSubmit:
		services.HandleModalSubmit(s, i, db)
	}
}
