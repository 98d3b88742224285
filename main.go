package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"edupanel/config"
	"edupanel/database"
	"edupanel/database/model"
	"edupanel/logger"
	"edupanel/storage"
	"edupanel/storage/memory"
	"edupanel/util/crypto"
	"edupanel/web"

	"github.com/joho/godotenv"
	"github.com/op/go-logging"
	"github.com/spf13/cobra"
)

func initLogger() {
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
}

// buildStore selects the storage backend. The default is the in-memory
// store; EDUPANEL_STORAGE=sqlite switches to the persistent database.
func buildStore() (storage.Store, func(), error) {
	if os.Getenv("EDUPANEL_STORAGE") == "sqlite" {
		if err := database.InitDB(config.GetDBPath()); err != nil {
			return nil, nil, err
		}
		closer := func() {
			if err := database.CloseDB(); err != nil {
				logger.Warning("close database err:", err)
			}
		}
		return database.NewStore(database.GetDB()), closer, nil
	}

	store := memory.NewStore()
	if err := seedMemoryStore(store); err != nil {
		return nil, nil, err
	}
	return store, func() {}, nil
}

// seedMemoryStore creates the default admin accounts when the store is
// empty, mirroring what database.InitDB does for the sqlite backend.
func seedMemoryStore(store storage.Store) error {
	username, password := config.GetDefaultCredentials()
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		return err
	}

	userCount, err := store.CountUsers()
	if err != nil {
		return err
	}
	if userCount == 0 {
		if _, err := store.CreateUser(&model.User{
			Username:     username,
			PasswordHash: hash,
			Email:        username + "@example.com",
			FullName:     "Admin User",
			Role:         model.RoleAdmin,
		}); err != nil {
			return err
		}
	}

	adminCount, err := store.CountAdmins()
	if err != nil {
		return err
	}
	if adminCount == 0 {
		if _, err := store.CreateAdmin(&model.Admin{
			Name:     "Admin User",
			Email:    username + "@example.com",
			Password: hash,
		}); err != nil {
			return err
		}
	}
	return nil
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())
	initLogger()

	store, closer, err := buildStore()
	if err != nil {
		log.Fatal(err)
	}
	defer closer()

	server := web.NewServer(store)
	if err := server.Start(); err != nil {
		log.Println(err)
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGINT)
	for {
		sig := <-sigCh

		switch sig {
		case syscall.SIGHUP:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer(store)
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			_ = server.Stop()
			return
		}
	}
}

// showSetting prints the current admin credentials and port from the
// persistent database.
func showSetting() {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()

	store := database.NewStore(database.GetDB())
	username, _ := config.GetDefaultCredentials()
	user, err := store.GetUserByUsername(username)
	if err != nil {
		fmt.Println("get current user info failed, error info:", err)
		return
	}
	if user == nil {
		fmt.Println("no admin user found")
		return
	}
	fmt.Println("current panel settings as follows:")
	fmt.Println("username:", user.Username)
	fmt.Println("port:", config.GetPort())
}

// resetCredentials restores the seed admin password in the persistent
// database.
func resetCredentials() {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()

	username, password := config.GetDefaultCredentials()
	hash, err := crypto.HashPasswordAsBcrypt(password)
	if err != nil {
		fmt.Println("hash password failed:", err)
		return
	}

	err = database.GetDB().Model(&model.User{}).
		Where("username = ?", username).
		Update("password_hash", hash).Error
	if err != nil {
		fmt.Println("reset credentials failed:", err)
	} else {
		fmt.Println("reset credentials success")
	}
}

func main() {
	_ = godotenv.Load()

	var showFlag, resetFlag bool

	rootCmd := &cobra.Command{
		Use:   "edupanel",
		Short: "School/NGO administration panel",
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	settingCmd := &cobra.Command{
		Use:   "setting",
		Short: "Inspect or reset panel settings",
		Run: func(cmd *cobra.Command, args []string) {
			if resetFlag {
				resetCredentials()
			}
			if showFlag {
				showSetting()
			}
		},
	}
	settingCmd.Flags().BoolVar(&showFlag, "show", false, "show current settings")
	settingCmd.Flags().BoolVar(&resetFlag, "reset", false, "reset admin credentials to defaults")

	rootCmd.AddCommand(runCmd, settingCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
