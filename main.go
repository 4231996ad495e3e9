package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tutormatch/tutormatch/config"
	"github.com/tutormatch/tutormatch/database"
	"github.com/tutormatch/tutormatch/logger"
	"github.com/tutormatch/tutormatch/web"
	"github.com/tutormatch/tutormatch/web/router"
	"github.com/tutormatch/tutormatch/web/service"
)

func initLogger() {
	level, err := logger.ParseLevel(config.GetLogLevel())
	if err != nil {
		log.Fatal(err)
	}
	logger.InitLogger(level)
}

func runWebServer() {
	log.Printf("%v %v", config.GetName(), config.GetVersion())
	initLogger()
	defer logger.CloseLogger()

	if err := database.InitDB(config.GetDBPath()); err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := database.CloseDB(); err != nil {
			logger.Warning("close db err:", err)
		}
	}()

	server := web.NewServer()
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
			logger.Info("received SIGHUP, restarting web server")
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			server = web.NewServer()
			if err := server.Start(); err != nil {
				log.Println(err)
				return
			}
		default:
			if err := server.Stop(); err != nil {
				logger.Warning("stop server err:", err)
			}
			return
		}
	}
}

func addUser(username, password, role string) {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()

	userService := service.UserService{}
	user, err := userService.AddUser(username, password, role)
	if err != nil {
		fmt.Println("add user failed:", err)
		return
	}
	fmt.Printf("added %s %s (%s)\n", user.Role, user.Username, user.PublicId)
}

func listUsers() {
	if err := database.InitDB(config.GetDBPath()); err != nil {
		fmt.Println(err)
		return
	}
	defer database.CloseDB()

	userService := service.UserService{}
	users, err := userService.GetUsers()
	if err != nil {
		fmt.Println("list users failed:", err)
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tUSERNAME\tROLE\tPUBLIC ID")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.Id, u.Username, u.Role, u.PublicId)
	}
	w.Flush()
}

func showRoutes() {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tNAME\tVIEW\tAUTH")
	for _, r := range router.Default().Routes() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", r.Path, r.Name, r.View, r.RequiresAuth)
	}
	w.Flush()
}

func main() {
	if err := config.LoadEnv(); err != nil {
		log.Fatal(err)
	}

	var rootCmd = &cobra.Command{
		Use:   config.GetName(),
		Short: "Tutor matching web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var runCmd = &cobra.Command{
		Use:   "run",
		Short: "Run the web server",
		Run: func(cmd *cobra.Command, args []string) {
			runWebServer()
		},
	}

	var userCmd = &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}

	var addCmd = &cobra.Command{
		Use:   "add",
		Short: "Add an account",
		Run: func(cmd *cobra.Command, args []string) {
			username, _ := cmd.Flags().GetString("username")
			password, _ := cmd.Flags().GetString("password")
			role, _ := cmd.Flags().GetString("role")
			addUser(username, password, role)
		},
	}

	addCmd.Flags().String("username", "", "login username")
	addCmd.Flags().String("password", "", "login password")
	addCmd.Flags().String("role", "learner", "learner, tutor or admin")
	_ = addCmd.MarkFlagRequired("username")
	_ = addCmd.MarkFlagRequired("password")

	var listCmd = &cobra.Command{
		Use:   "list",
		Short: "List accounts",
		Run: func(cmd *cobra.Command, args []string) {
			listUsers()
		},
	}

	userCmd.AddCommand(addCmd, listCmd)

	var routesCmd = &cobra.Command{
		Use:   "routes",
		Short: "Print the route table",
		Run: func(cmd *cobra.Command, args []string) {
			showRoutes()
		},
	}

	var versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(config.GetVersion())
		},
	}

	rootCmd.AddCommand(runCmd, userCmd, routesCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
