package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/thenoetrevino/kanban/internal/models"
)

const activeBoardKey = "active_board"

// Backend persists the state into normalized tables
type Backend struct {
	db   *sql.DB
	path string
}

// Open opens (and migrates) the database at path
func Open(ctx context.Context, path string) (*Backend, error) {
	db, err := InitDB(ctx, path)
	if err != nil {
		return nil, err
	}
	return &Backend{db: db, path: path}, nil
}

// Path returns the database file path
func (b *Backend) Path() string {
	return b.path
}

// DB exposes the underlying handle, mostly for tests
func (b *Backend) DB() *sql.DB {
	return b.db
}

// Close releases the database handle
func (b *Backend) Close() error {
	return b.db.Close()
}

// Load reads every board, column, task and tag back into a State
func (b *Backend) Load(ctx context.Context) (*models.State, error) {
	state := models.NewState()

	boards, err := b.loadBoards(ctx)
	if err != nil {
		return nil, err
	}
	columns, err := b.loadColumns(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := b.loadTasks(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := b.loadTags(ctx)
	if err != nil {
		return nil, err
	}

	for i := range boards {
		for _, col := range columns[boards[i].ID] {
			for _, task := range tasks[col.ID] {
				if t, ok := tags[task.ID]; ok {
					task.Tags = t
				}
				col.Tasks = append(col.Tasks, task)
			}
			boards[i].Columns = append(boards[i].Columns, col)
		}
	}
	state.Boards = boards

	var active string
	err = b.db.QueryRowContext(ctx, `SELECT value FROM meta WHERE key = ?`, activeBoardKey).Scan(&active)
	if err != nil && err != sql.ErrNoRows {
		return nil, fmt.Errorf("failed to read active board: %w", err)
	}
	state.ActiveBoard = active

	state.Normalize()
	return &state, nil
}

func (b *Backend) loadBoards(ctx context.Context) ([]models.Board, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT id, title FROM boards ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query boards: %w", err)
	}
	defer func() { _ = rows.Close() }()

	boards := []models.Board{}
	for rows.Next() {
		var board models.Board
		if err := rows.Scan(&board.ID, &board.Title); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		board.Columns = []models.Column{}
		boards = append(boards, board)
	}
	return boards, rows.Err()
}

func (b *Backend) loadColumns(ctx context.Context) (map[string][]models.Column, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT id, board_id, title, color FROM columns ORDER BY board_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byBoard := make(map[string][]models.Column)
	for rows.Next() {
		var col models.Column
		var boardID string
		if err := rows.Scan(&col.ID, &boardID, &col.Title, &col.Color); err != nil {
			return nil, fmt.Errorf("failed to scan column: %w", err)
		}
		col.Tasks = []models.Task{}
		byBoard[boardID] = append(byBoard[boardID], col)
	}
	return byBoard, rows.Err()
}

func (b *Backend) loadTasks(ctx context.Context) (map[string][]models.Task, error) {
	rows, err := b.db.QueryContext(ctx, `
		SELECT id, column_id, title, description, priority, created_at, due_date
		FROM tasks ORDER BY column_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byColumn := make(map[string][]models.Task)
	for rows.Next() {
		var (
			task      models.Task
			columnID  string
			priority  string
			createdAt string
			dueDate   sql.NullString
		)
		if err := rows.Scan(&task.ID, &columnID, &task.Title, &task.Description, &priority, &createdAt, &dueDate); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		task.Priority = models.Priority(priority)
		task.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, fmt.Errorf("task %s: bad created_at %q: %w", task.ID, createdAt, err)
		}
		if dueDate.Valid {
			due, err := time.Parse(time.RFC3339Nano, dueDate.String)
			if err != nil {
				return nil, fmt.Errorf("task %s: bad due_date %q: %w", task.ID, dueDate.String, err)
			}
			task.DueDate = &due
		}
		task.Tags = []string{}
		byColumn[columnID] = append(byColumn[columnID], task)
	}
	return byColumn, rows.Err()
}

func (b *Backend) loadTags(ctx context.Context) (map[string][]string, error) {
	rows, err := b.db.QueryContext(ctx, `SELECT task_id, tag FROM task_tags ORDER BY task_id, position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer func() { _ = rows.Close() }()

	byTask := make(map[string][]string)
	for rows.Next() {
		var taskID, tag string
		if err := rows.Scan(&taskID, &tag); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		byTask[taskID] = append(byTask[taskID], tag)
	}
	return byTask, rows.Err()
}

// Save replaces every stored row with the given state in a single transaction
func (b *Backend) Save(ctx context.Context, state models.State) error {
	return withTx(ctx, b.db, func(tx *sql.Tx) error {
		for _, table := range []string{"task_tags", "tasks", "columns", "boards", "meta"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}

		for bi, board := range state.Boards {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO boards (id, title, position) VALUES (?, ?, ?)`,
				board.ID, board.Title, bi); err != nil {
				return fmt.Errorf("failed to insert board %s: %w", board.ID, err)
			}
			for ci, col := range board.Columns {
				if _, err := tx.ExecContext(ctx,
					`INSERT INTO columns (id, board_id, title, color, position) VALUES (?, ?, ?, ?, ?)`,
					col.ID, board.ID, col.Title, col.Color, ci); err != nil {
					return fmt.Errorf("failed to insert column %s: %w", col.ID, err)
				}
				for ti, task := range col.Tasks {
					if err := insertTask(ctx, tx, col.ID, ti, task); err != nil {
						return err
					}
				}
			}
		}

		if state.ActiveBoard != "" {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO meta (key, value) VALUES (?, ?)`, activeBoardKey, state.ActiveBoard); err != nil {
				return fmt.Errorf("failed to store active board: %w", err)
			}
		}
		return nil
	})
}

func insertTask(ctx context.Context, tx *sql.Tx, columnID string, position int, task models.Task) error {
	var due sql.NullString
	if task.DueDate != nil {
		due = sql.NullString{String: task.DueDate.Format(time.RFC3339Nano), Valid: true}
	}
	priority := task.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO tasks (id, column_id, title, description, priority, created_at, due_date, position)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		task.ID, columnID, task.Title, task.Description, string(priority),
		task.CreatedAt.Format(time.RFC3339Nano), due, position); err != nil {
		return fmt.Errorf("failed to insert task %s: %w", task.ID, err)
	}

	for i, tag := range task.Tags {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO task_tags (task_id, tag, position) VALUES (?, ?, ?)`,
			task.ID, tag, i); err != nil {
			return fmt.Errorf("failed to insert tag for task %s: %w", task.ID, err)
		}
	}
	return nil
}
