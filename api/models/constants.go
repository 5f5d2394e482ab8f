package models

var Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
