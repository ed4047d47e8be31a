package diwata

const Version = "diwata-dao/0.1.0"
