package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/ppaanngggg/appsync-resolver/pkg"
	"github.com/sirupsen/logrus"
	"github.com/snwfdhmp/errlog"
)

var c *pkg.Config

func init() {
	// load config
	var err error
	c, err = pkg.LoadConfig()
	if errlog.Debug(err) {
		panic(err)
	}
	// setup logger
	if err = c.SetupLogger(logrus.StandardLogger()); errlog.Debug(err) {
		panic(err)
	}
	middleware.DefaultLogger = middleware.RequestLogger(
		&middleware.DefaultLogFormatter{
			Logger: logrus.StandardLogger(), NoColor: !c.LogColor,
		},
	)
}

func main() {
	r := pkg.NewRouter(pkg.NewHandler(logrus.StandardLogger()), c)

	addr := ":" + strconv.Itoa(c.Port)
	logrus.Infof("Listening on " + addr)
	if err := http.ListenAndServe(addr, r); errlog.Debug(err) {
		logrus.WithError(err).Fatal("listen and serve")
	}
}
