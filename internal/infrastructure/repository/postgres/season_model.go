package postgres

import "time"

type seasonTableModel struct {
	ID               int64      `db:"id"`
	PublicID         string     `db:"public_id"`
	Name             string     `db:"nome"`
	PointsWin        float64    `db:"pontos_vitoria"`
	PointsDraw       float64    `db:"pontos_empate"`
	PointsLoss       float64    `db:"pontos_derrota"`
	LatenessPenalty1 float64    `db:"penalidade_atraso_tipo1"`
	LatenessPenalty2 float64    `db:"penalidade_atraso_tipo2"`
	YellowCardPoints float64    `db:"pontos_cartao_amarelo"`
	BlueCardPoints   float64    `db:"pontos_cartao_azul"`
	RedCardPoints    float64    `db:"pontos_cartao_vermelho"`
	Discards         int        `db:"descartes"`
	IsActive         bool       `db:"ativa"`
	CreatedAt        time.Time  `db:"created_at"`
	UpdatedAt        time.Time  `db:"updated_at"`
	DeletedAt        *time.Time `db:"deleted_at"`
}
