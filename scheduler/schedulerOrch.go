package scheduler

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	"upsetTipBot/models"
	"upsetTipBot/scheduler/scheduler_jobs"
)

func SetupCron(s *discordgo.Session, db *gorm.DB) {
	cronService := cron.New(cron.WithSeconds())

	_, err := cronService.AddFunc("0 */5 * * 3-10 *", func() {
		// Every 5 minutes, March through October (NRL season)
		err := scheduler_jobs.CheckRoundLock(s, db)
		if err != nil {
			fmt.Println(err)
		}
	})
	_, err = cronService.AddFunc("0 0 */1 * 3-10 *", func() {
		// Every hour, March through October
		err := scheduler_jobs.CheckResults(s, db)
		if err != nil {
			fmt.Println(err)
		}
	})
	_, err = cronService.AddFunc("0 0 9 * 3-10 *", func() {
		// At 9am every day, March through October
		err := scheduler_jobs.CheckLadderRefresh(s, db)
		if err != nil {
			fmt.Println(err)
		}
	})

	if err != nil {
		errLog := models.ErrorLog{
			GuildID: "CRON ERR",
			Message: fmt.Sprintf("%v", err),
		}
		db.Create(&errLog)
	}

	cronService.Start()
}
