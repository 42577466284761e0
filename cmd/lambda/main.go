package main

import (
	"github.com/aws/aws-lambda-go/lambda"
	"github.com/ppaanngggg/appsync-resolver/pkg"
	"github.com/sirupsen/logrus"
	"github.com/snwfdhmp/errlog"
)

func main() {
	c, err := pkg.LoadConfig()
	if errlog.Debug(err) {
		panic(err)
	}
	if err = c.SetupLogger(logrus.StandardLogger()); errlog.Debug(err) {
		panic(err)
	}
	h := pkg.NewHandler(logrus.StandardLogger())
	lambda.Start(h.Handle)
}
