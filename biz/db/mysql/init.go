package mysql

import (
	"fmt"

	"join_now/be/biz/config"
	"join_now/be/biz/model/storage"

	driver "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var dbConn *gorm.DB

func Init() {
	conf := config.GetMySQLConf()
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		conf.Username, conf.Password, conf.IP, conf.Port, conf.DBName)

	db, err := gorm.Open(driver.Open(dsn), &gorm.Config{})
	if err != nil {
		panic(err)
	}

	if err := db.AutoMigrate(
		&storage.AccountRecord{},
		&storage.AccountCredentialRecord{},
	); err != nil {
		panic(err)
	}

	dbConn = db
}

func GetDbConn() *gorm.DB {
	return dbConn
}
