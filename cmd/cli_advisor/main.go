package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"smart-advisor/internal/config"
	"smart-advisor/internal/repository"
	"smart-advisor/internal/service"
)

func main() {
	reader := bufio.NewReader(os.Stdin)

	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger := zap.NewExample()
	defer logger.Sync()

	catalog, err := repository.LoadCatalogCSV(cfg.CatalogPath)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}
	questionnaire, templates, err := repository.LoadQuestionnaireYAML(cfg.QuestionnairePath, catalog.Space())
	if err != nil {
		log.Fatalf("load questionnaire: %v", err)
	}
	narrative, err := service.NewNarrativeGenerator(catalog.Space(), templates)
	if err != nil {
		log.Fatalf("narrative templates: %v", err)
	}

	aggregator := service.NewAggregator(catalog.Space(), questionnaire)
	ranker := service.NewRanker(cfg.TopK)
	advisor := service.NewAdvisorService(catalog, questionnaire, aggregator, ranker, narrative, logger)

	for {
		fmt.Println("===== Smart Advisor =====")
		fmt.Printf("%d questions, %d programmes in the catalog.\n\n", questionnaire.Len(), catalog.Len())

		answers := make(map[string]string, questionnaire.Len())
		for i, q := range questionnaire.Questions() {
			fmt.Printf("Question %d of %d: %s\n", i+1, questionnaire.Len(), q.Text)
			for j, opt := range q.Options {
				fmt.Printf("  [%d] %s\n", j+1, opt.Text)
			}
			answers[q.ID] = q.Options[readChoice(reader, len(q.Options))].ID
			fmt.Println()
		}

		rec, err := advisor.Score(answers)
		if err != nil {
			log.Fatalf("score: %v", err)
		}
		fmt.Println(advisor.FormatReport(rec))

		fmt.Print("Retake the questionnaire? [y/N]: ")
		again, _ := reader.ReadString('\n')
		if !strings.EqualFold(strings.TrimSpace(again), "y") {
			return
		}
		fmt.Println()
	}
}

// readChoice keeps prompting until the user picks a valid option and
// returns its zero-based index.
func readChoice(reader *bufio.Reader, options int) int {
	for {
		fmt.Print("Your choice: ")
		line, err := reader.ReadString('\n')
		if err != nil {
			fmt.Println()
			os.Exit(0)
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && n >= 1 && n <= options {
			return n - 1
		}
		fmt.Printf("Please enter a number between 1 and %d.\n", options)
	}
}
