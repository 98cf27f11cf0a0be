package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"postboard/config"
	"postboard/database"
	"postboard/logger"
	"postboard/util/crypto"
	"postboard/web"
	"postboard/web/service"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())

	switch config.GetLogLevel() {
	case config.Debug:
		logger.InitLogger(logging.DEBUG)
	case config.Info:
		logger.InitLogger(logging.INFO)
	case config.Notice:
		logger.InitLogger(logging.NOTICE)
	case config.Warn:
		logger.InitLogger(logging.WARNING)
	case config.Error:
		logger.InitLogger(logging.ERROR)
	default:
		log.Fatal("unknown log level:", config.GetLogLevel())
	}

	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}

	server := web.NewServer()
	err = server.Start()
	if err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	// Trap shutdown signals
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			err := server.Stop()
			if err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			err = server.Start()
			if err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			logger.CloseLogger()
			return
		}
	}
}

func migrateDb() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println("Migration done!")
}

// resetAdmin restores the seeded admin account's password to the configured
// initial value.
func resetAdmin() {
	err := database.InitDB(config.GetDBPath())
	if err != nil {
		fmt.Println(err)
		return
	}

	userService := service.UserService{}
	admin, err := userService.GetByEmail(config.GetAdminEmail())
	if err != nil {
		fmt.Println("admin user not found:", err)
		return
	}

	hashed, err := crypto.HashPassword(config.GetAdminPassword())
	if err != nil {
		fmt.Println("hash password failed:", err)
		return
	}
	err = userService.Update(admin.Id, map[string]any{"password": hashed})
	if err != nil {
		fmt.Println("reset admin failed:", err)
	} else {
		fmt.Println("reset admin success")
	}
}

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment")
	}

	var rootCmd = &cobra.Command{
		Use: "postboard",
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var migrateCmd = &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations and exit",
		Run: func(cmd *cobra.Command, args []string) {
			migrateDb()
		},
	}

	var settingCmd = &cobra.Command{
		Use:   "setting",
		Short: "Manage settings",
	}

	var resetAdminCmd = &cobra.Command{
		Use:   "reset-admin",
		Short: "Reset the admin password to its configured initial value",
		Run: func(cmd *cobra.Command, args []string) {
			resetAdmin()
		},
	}

	settingCmd.AddCommand(resetAdminCmd)
	rootCmd.AddCommand(runCmd, migrateCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println("run failed:", err)
		os.Exit(1)
	}
}
