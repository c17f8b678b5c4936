package service

import (
	"context"
	"fmt"
	"testing"

	"mannamsalon/internal/core"
	"mannamsalon/internal/dto"
	cErr "mannamsalon/internal/pkg/error"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotices_EmployeeListIsCappedNewestFirst(t *testing.T) {
	e := newTestEnv(kim)
	ctx := context.Background()
	for i := 1; i <= 5; i++ {
		_, err := e.noticeSv.Create(ctx, &dto.NoticeDto{Title: fmt.Sprintf("공지 %d", i), Content: "내용"})
		require.NoError(t, err)
	}

	forEmployee, err := e.noticeSv.List(ctx, employeeSession(kim), 0)
	require.NoError(t, err)
	require.Len(t, forEmployee, core.EmployeeNoticeLimit)
	assert.Equal(t, "공지 5", forEmployee[0].Title)

	forEmployee, err = e.noticeSv.List(ctx, employeeSession(kim), 10)
	require.NoError(t, err)
	assert.Len(t, forEmployee, core.EmployeeNoticeLimit)

	forManager, err := e.noticeSv.List(ctx, managerSession(), 0)
	require.NoError(t, err)
	assert.Len(t, forManager, 5)
}

func TestNotices_DefaultTitle(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()

	notice, err := e.noticeSv.Create(ctx, &dto.NoticeDto{Title: "  ", Content: "오늘 휴무"})
	require.NoError(t, err)
	assert.Equal(t, core.DefaultNoticeTitle, notice.Title)

	_, err = e.noticeSv.Create(ctx, &dto.NoticeDto{Title: "제목"})
	assert.ErrorIs(t, err, cErr.ValidateErr(""))
}

func TestNotices_UpdateMovesToTop(t *testing.T) {
	e := newTestEnv()
	ctx := context.Background()
	first, err := e.noticeSv.Create(ctx, &dto.NoticeDto{Title: "첫번째", Content: "a"})
	require.NoError(t, err)
	_, err = e.noticeSv.Create(ctx, &dto.NoticeDto{Title: "두번째", Content: "b"})
	require.NoError(t, err)

	_, err = e.noticeSv.Update(ctx, first.ID.Hex(), &dto.NoticeDto{Title: "첫번째", Content: "수정", Important: true})
	require.NoError(t, err)

	list, err := e.noticeSv.List(ctx, managerSession(), 0)
	require.NoError(t, err)
	assert.Equal(t, first.ID, list[0].ID)
	assert.True(t, list[0].Important)

	require.NoError(t, e.noticeSv.Delete(ctx, first.ID.Hex()))
	assert.ErrorIs(t, e.noticeSv.Delete(ctx, first.ID.Hex()), cErr.NotFound(""))
}
