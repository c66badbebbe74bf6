package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"

	_ "github.com/go-sql-driver/mysql"

	"github.com/autocredits/brokerd/pkg/models/mysql"
	"github.com/autocredits/brokerd/pkg/persist"
)

type application struct {
	errorLog      *log.Logger
	infoLog       *log.Logger
	secret        []byte
	s3id          string
	s3secret      string
	s3endpoint    string
	s3region      string
	s3bucket      string
	runtimeEnv    string
	user          *mysql.UserModel
	dropdown      *mysql.DropdownModel
	loan          *mysql.LoanModel
	deliveryOrder *mysql.DeliveryOrderModel
	payment       *mysql.PaymentModel
	saver         *persist.Saver
}

func main() {
	addr := flag.String("addr", ":4000", "HTTP network address")
	dsn := flag.String("dsn", "user:password@tcp(host)/database_name?parseTime=true", "MySQL data source name")
	secret := flag.String("secret", "brokerd", "Secret key for generating jwts")
	s3id := flag.String("id", "", "AWS S3 identification")
	s3secret := flag.String("s3secret", "", "AWS S3 secret")
	s3endpoint := flag.String("endpoint", "sgp1.digitaloceanspaces.com", "AWS S3 endpoint")
	s3region := flag.String("region", "sgp1", "AWS S3 region")
	s3bucket := flag.String("bucket", "autocredits", "AWS S3 bucket")
	runtimeEnv := flag.String("renv", "prod", "Runtime environment mode")
	flag.Parse()

	infoLog := log.New(os.Stdout, "INFO\t", log.Ldate|log.Ltime)
	errorLog := log.New(os.Stderr, "ERROR\t", log.Ldate|log.Ltime|log.Lshortfile)

	db, err := openDB(*dsn)
	if err != nil {
		errorLog.Fatal(err)
	}

	defer db.Close()

	app := &application{
		errorLog:      errorLog,
		infoLog:       infoLog,
		secret:        []byte(*secret),
		s3id:          *s3id,
		s3secret:      *s3secret,
		s3endpoint:    *s3endpoint,
		s3region:      *s3region,
		s3bucket:      *s3bucket,
		runtimeEnv:    *runtimeEnv,
		user:          &mysql.UserModel{DB: db},
		dropdown:      &mysql.DropdownModel{DB: db},
		loan:          &mysql.LoanModel{DB: db},
		deliveryOrder: &mysql.DeliveryOrderModel{DB: db},
		payment:       &mysql.PaymentModel{DB: db},
		saver:         persist.NewSaver(persist.DefaultQuiescence, errorLog),
	}

	srv := &http.Server{
		Addr:     *addr,
		ErrorLog: errorLog,
		Handler:  app.routes(),
	}

	infoLog.Printf("Starting server on %s", *addr)
	err = srv.ListenAndServe()
	errorLog.Fatal(err)
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	return db, err
}
