// Seeds the database with sample users and challenges. Run after the server
// has applied migrations (or with RUN_MIGRATIONS=true on first boot):
//
//	go run ./cmd/seed
package main

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"github.com/DevKaiky/appfit-API/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?parseTime=true&charset=utf8mb4",
		cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBDatabase)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	log.Println("Conectado ao banco de dados...")

	// Limpar dados anteriores (ordem respeita as foreign keys)
	for _, table := range []string{"progresso", "desafios", "usuarios"} {
		if _, err := db.Exec("DELETE FROM " + table); err != nil {
			log.Fatalf("Failed to clear table %s: %v", table, err)
		}
	}
	log.Println("Tabelas limpas.")

	senhaPadrao := "123456"
	hashSenha, err := bcrypt.GenerateFromPassword([]byte(senhaPadrao), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	res, err := db.Exec(`
		INSERT INTO usuarios (nome, email, senha) VALUES
		('Admin Teste', 'admin@appfit.com', ?),
		('João Silva', 'joao@email.com', ?),
		('Maria Santos', 'maria@email.com', ?)
	`, hashSenha, hashSenha, hashSenha)
	if err != nil {
		log.Fatalf("Failed to seed users: %v", err)
	}
	firstID, err := res.LastInsertId()
	if err != nil {
		log.Fatalf("Failed to get first user id: %v", err)
	}
	log.Println("Usuários criados: 3 (senha padrão:", senhaPadrao+")")

	admin := firstID
	joao := firstID + 1

	// Datas relativas para que os desafios sempre estejam no futuro.
	inicio := time.Now().AddDate(0, 1, 0).Format("2006-01-02")
	fim30 := time.Now().AddDate(0, 1, 29).Format("2006-01-02")
	fim21 := time.Now().AddDate(0, 1, 20).Format("2006-01-02")
	fim56 := time.Now().AddDate(0, 2, 25).Format("2006-01-02")

	_, err = db.Exec(`
		INSERT INTO desafios (titulo, descricao, data_inicio, data_fim, nivel_dificuldade, recompensa, criado_por) VALUES
		('30 Dias de Corrida', 'Correr pelo menos 5km todos os dias durante 30 dias consecutivos', ?, ?, 'Intermediario', 'Medalha Bronze + 100 pontos', ?),
		('Desafio Flexibilidade', 'Alongamentos diários por 15 minutos durante 21 dias', ?, ?, 'Iniciante', 'Badge Flexível', ?),
		('100 Flexões em 30 Dias', 'Progredir de 10 até 100 flexões em um único treino ao longo de 30 dias', ?, ?, 'Avancado', 'Troféu Força + 200 pontos', ?),
		('Maratona de Yoga', 'Praticar yoga 5 vezes por semana durante 8 semanas', ?, ?, 'Intermediario', 'Certificado Digital', ?)
	`,
		inicio, fim30, admin,
		inicio, fim21, admin,
		inicio, fim30, admin,
		inicio, fim56, joao,
	)
	if err != nil {
		log.Fatalf("Failed to seed desafios: %v", err)
	}
	log.Println("Desafios criados: 4")

	log.Println("Seed concluído.")
}
